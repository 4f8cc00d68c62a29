package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tdrmf/foundation-api/internal/domain"
	"github.com/tdrmf/foundation-api/internal/repository/dao"
)

var ErrEventNotFound = dao.ErrEventNotFound

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindPublishedUpcoming(ctx context.Context, now time.Time) ([]dao.Event, error)
	FindAll(ctx context.Context) ([]dao.Event, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	Delete(ctx context.Context, id uint) error
	InsertRSVP(ctx context.Context, rsvp dao.RSVP) (dao.RSVP, error)
	CountRSVPsByEventID(ctx context.Context, eventID uint) (int64, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FindPublishedUpcoming(ctx context.Context, now time.Time) ([]domain.Event, error) {
	found, err := r.dao.FindPublishedUpcoming(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPublishedUpcoming -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, r.daoToDomain(e))
	}

	return events, nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, r.daoToDomain(e))
	}

	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) CreateRSVP(ctx context.Context, rsvp domain.RSVP) (domain.RSVP, error) {
	created, err := r.dao.InsertRSVP(ctx, dao.RSVP{
		EventID: rsvp.EventID,
		Name:    rsvp.Name,
		Email:   rsvp.Email,
	})
	if err != nil {
		return domain.RSVP{}, fmt.Errorf("r.dao.InsertRSVP -> %w", err)
	}

	return domain.RSVP{
		ID:        created.ID,
		EventID:   created.EventID,
		Name:      created.Name,
		Email:     created.Email,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (r *EventRepository) CountRSVPs(ctx context.Context, eventID uint) (int64, error) {
	count, err := r.dao.CountRSVPsByEventID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountRSVPsByEventID -> %w", err)
	}

	return count, nil
}

func (r *EventRepository) domainToDAO(e domain.Event) dao.Event {
	return dao.Event{
		ID:                      e.ID,
		Title:                   e.Title,
		Summary:                 e.Summary,
		Description:             e.Description,
		StartAt:                 e.StartAt,
		EndAt:                   e.EndAt,
		Location:                e.Location,
		ExternalRegistrationURL: e.ExternalRegistrationURL,
		IsPublished:             e.IsPublished,
		CreatedAt:               e.CreatedAt,
	}
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:                      e.ID,
		Title:                   e.Title,
		Summary:                 e.Summary,
		Description:             e.Description,
		StartAt:                 e.StartAt,
		EndAt:                   e.EndAt,
		Location:                e.Location,
		ExternalRegistrationURL: e.ExternalRegistrationURL,
		IsPublished:             e.IsPublished,
		CreatedAt:               e.CreatedAt,
		UpdatedAt:               e.UpdatedAt,
	}
}
