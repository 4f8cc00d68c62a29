package domain

import "time"

type Event struct {
	ID                      uint       `json:"id"`
	Title                   string     `json:"title"`
	Summary                 string     `json:"summary"`
	Description             string     `json:"description"`
	StartAt                 time.Time  `json:"start_at"`
	EndAt                   *time.Time `json:"end_at"`
	Location                string     `json:"location"`
	ExternalRegistrationURL string     `json:"external_registration_url"`
	IsPublished             bool       `json:"is_published"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

// EventPatch is a partial update; nil fields are left untouched.
type EventPatch struct {
	Title                   *string
	Summary                 *string
	Description             *string
	StartAt                 *time.Time
	EndAt                   *time.Time
	Location                *string
	ExternalRegistrationURL *string
	IsPublished             *bool
}

func (p EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Summary != nil {
		e.Summary = *p.Summary
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.StartAt != nil {
		e.StartAt = *p.StartAt
	}
	if p.EndAt != nil {
		e.EndAt = p.EndAt
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.ExternalRegistrationURL != nil {
		e.ExternalRegistrationURL = *p.ExternalRegistrationURL
	}
	if p.IsPublished != nil {
		e.IsPublished = *p.IsPublished
	}
}

type RSVP struct {
	ID        uint      `json:"id"`
	EventID   uint      `json:"event_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
