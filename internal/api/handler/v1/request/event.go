package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateEventRequest struct {
	Title                   string     `json:"title"`
	Summary                 string     `json:"summary"`
	Description             string     `json:"description"`
	StartAt                 time.Time  `json:"start_at"`
	EndAt                   *time.Time `json:"end_at"`
	Location                string     `json:"location"`
	ExternalRegistrationURL string     `json:"external_registration_url"`
	IsPublished             bool       `json:"is_published"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.StartAt, validation.Required),
		validation.Field(&req.ExternalRegistrationURL, is.URL),
	)
}

type UpdateEventRequest struct {
	Title                   *string    `json:"title"`
	Summary                 *string    `json:"summary"`
	Description             *string    `json:"description"`
	StartAt                 *time.Time `json:"start_at"`
	EndAt                   *time.Time `json:"end_at"`
	Location                *string    `json:"location"`
	ExternalRegistrationURL *string    `json:"external_registration_url"`
	IsPublished             *bool      `json:"is_published"`
}

func (req *UpdateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(2, 200)),
		validation.Field(&req.ExternalRegistrationURL, is.URL),
	)
}

type CreateRSVPRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (req *CreateRSVPRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
	)
}
