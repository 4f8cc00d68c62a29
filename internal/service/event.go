package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tdrmf/foundation-api/internal/domain"
	"github.com/tdrmf/foundation-api/internal/repository"
)

var (
	ErrEventNotFound    = repository.ErrEventNotFound
	ErrEventUnpublished = errors.New("event is not published")
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindPublishedUpcoming(ctx context.Context, now time.Time) ([]domain.Event, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id uint) error
	CreateRSVP(ctx context.Context, rsvp domain.RSVP) (domain.RSVP, error)
	CountRSVPs(ctx context.Context, eventID uint) (int64, error)
}

// RSVPResult is the outcome of an RSVP attempt: either a stored RSVP or,
// for externally registered events, the URL to send the attendee to.
type RSVPResult struct {
	RSVP        *domain.RSVP
	ExternalURL string
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

func (s *EventService) ListUpcoming(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindPublishedUpcoming(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPublishedUpcoming -> %w", err)
	}

	return events, nil
}

// GetPublished returns a single event; unpublished events are reported as
// not found to public callers.
func (s *EventService) GetPublished(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.Event{}, ErrEventNotFound
		}

		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !event.IsPublished {
		return domain.Event{}, ErrEventNotFound
	}

	return event, nil
}

// CreateRSVP stores an RSVP unless the event registers attendees
// externally, in which case no row is created and the external URL is
// returned instead.
func (s *EventService) CreateRSVP(ctx context.Context, eventID uint, name, email string) (RSVPResult, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return RSVPResult{}, ErrEventNotFound
		}

		return RSVPResult{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if event.ExternalRegistrationURL != "" {
		return RSVPResult{ExternalURL: event.ExternalRegistrationURL}, nil
	}

	rsvp, err := s.repo.CreateRSVP(ctx, domain.RSVP{
		EventID: eventID,
		Name:    name,
		Email:   email,
	})
	if err != nil {
		return RSVPResult{}, fmt.Errorf("s.repo.CreateRSVP -> %w", err)
	}

	return RSVPResult{RSVP: &rsvp}, nil
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) ListAll(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

// UpdateEvent applies the non-nil fields of patch onto the stored event.
func (s *EventService) UpdateEvent(ctx context.Context, id uint, patch domain.EventPatch) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.Event{}, ErrEventNotFound
		}

		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	patch.Apply(&event)

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// CountRSVPs returns the attendee count for an event, drafts included.
func (s *EventService) CountRSVPs(ctx context.Context, eventID uint) (int64, error) {
	if _, err := s.repo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return 0, ErrEventNotFound
		}

		return 0, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	count, err := s.repo.CountRSVPs(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("s.repo.CountRSVPs -> %w", err)
	}

	return count, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return ErrEventNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
