package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdrmf/foundation-api/internal/domain"
	"github.com/tdrmf/foundation-api/internal/repository"
	"github.com/tdrmf/foundation-api/internal/service"
)

type stubEventRepo struct {
	events map[uint]domain.Event
	rsvps  []domain.RSVP
	nextID uint
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{
		events: map[uint]domain.Event{},
		nextID: 1,
	}
}

func (r *stubEventRepo) Create(_ context.Context, event domain.Event) (domain.Event, error) {
	event.ID = r.nextID
	r.nextID++
	r.events[event.ID] = event

	return event, nil
}

func (r *stubEventRepo) FindByID(_ context.Context, id uint) (domain.Event, error) {
	event, exists := r.events[id]
	if !exists {
		return domain.Event{}, repository.ErrEventNotFound
	}

	return event, nil
}

func (r *stubEventRepo) FindPublishedUpcoming(_ context.Context, now time.Time) ([]domain.Event, error) {
	var upcoming []domain.Event
	for _, e := range r.events {
		if e.IsPublished && !e.StartAt.Before(now) {
			upcoming = append(upcoming, e)
		}
	}

	return upcoming, nil
}

func (r *stubEventRepo) FindAll(_ context.Context) ([]domain.Event, error) {
	var all []domain.Event
	for _, e := range r.events {
		all = append(all, e)
	}

	return all, nil
}

func (r *stubEventRepo) Update(_ context.Context, event domain.Event) (domain.Event, error) {
	if _, exists := r.events[event.ID]; !exists {
		return domain.Event{}, repository.ErrEventNotFound
	}
	r.events[event.ID] = event

	return event, nil
}

func (r *stubEventRepo) Delete(_ context.Context, id uint) error {
	if _, exists := r.events[id]; !exists {
		return repository.ErrEventNotFound
	}
	delete(r.events, id)

	return nil
}

func (r *stubEventRepo) CreateRSVP(_ context.Context, rsvp domain.RSVP) (domain.RSVP, error) {
	rsvp.ID = uint(len(r.rsvps) + 1)
	r.rsvps = append(r.rsvps, rsvp)

	return rsvp, nil
}

func (r *stubEventRepo) CountRSVPs(_ context.Context, eventID uint) (int64, error) {
	var count int64
	for _, rsvp := range r.rsvps {
		if rsvp.EventID == eventID {
			count++
		}
	}

	return count, nil
}

func TestEventService_GetPublished(t *testing.T) {
	repo := newStubEventRepo()
	svc := service.NewEventService(repo)

	published, err := svc.CreateEvent(context.Background(), domain.Event{
		Title:       "Memorial Walk",
		StartAt:     time.Now().Add(24 * time.Hour),
		IsPublished: true,
	})
	require.NoError(t, err)

	draft, err := svc.CreateEvent(context.Background(), domain.Event{
		Title:   "Draft Gala",
		StartAt: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	got, err := svc.GetPublished(context.Background(), published.ID)
	require.NoError(t, err)
	assert.Equal(t, "Memorial Walk", got.Title)

	// Drafts look identical to missing events from the outside.
	_, err = svc.GetPublished(context.Background(), draft.ID)
	assert.ErrorIs(t, err, service.ErrEventNotFound)

	_, err = svc.GetPublished(context.Background(), 999)
	assert.ErrorIs(t, err, service.ErrEventNotFound)
}

func TestEventService_CreateRSVP(t *testing.T) {
	repo := newStubEventRepo()
	svc := service.NewEventService(repo)

	event, err := svc.CreateEvent(context.Background(), domain.Event{
		Title:       "Memorial Walk",
		StartAt:     time.Now().Add(24 * time.Hour),
		IsPublished: true,
	})
	require.NoError(t, err)

	result, err := svc.CreateRSVP(context.Background(), event.ID, "Jamie Williams", "jamie@example.com")
	require.NoError(t, err)

	require.NotNil(t, result.RSVP)
	assert.Empty(t, result.ExternalURL)
	assert.Equal(t, event.ID, result.RSVP.EventID)
	assert.Len(t, repo.rsvps, 1)
}

func TestEventService_CreateRSVP_ExternalRegistration(t *testing.T) {
	repo := newStubEventRepo()
	svc := service.NewEventService(repo)

	event, err := svc.CreateEvent(context.Background(), domain.Event{
		Title:                   "Charity Gala",
		StartAt:                 time.Now().Add(24 * time.Hour),
		ExternalRegistrationURL: "https://tickets.example.com/gala",
		IsPublished:             true,
	})
	require.NoError(t, err)

	result, err := svc.CreateRSVP(context.Background(), event.ID, "Jamie Williams", "jamie@example.com")
	require.NoError(t, err)

	assert.Nil(t, result.RSVP)
	assert.Equal(t, "https://tickets.example.com/gala", result.ExternalURL)
	assert.Empty(t, repo.rsvps, "external registration must not create a local RSVP")
}

func TestEventService_CountRSVPs(t *testing.T) {
	repo := newStubEventRepo()
	svc := service.NewEventService(repo)

	event, err := svc.CreateEvent(context.Background(), domain.Event{
		Title:       "Memorial Walk",
		StartAt:     time.Now().Add(24 * time.Hour),
		IsPublished: true,
	})
	require.NoError(t, err)

	other, err := svc.CreateEvent(context.Background(), domain.Event{
		Title:       "Charity Gala",
		StartAt:     time.Now().Add(48 * time.Hour),
		IsPublished: true,
	})
	require.NoError(t, err)

	_, err = svc.CreateRSVP(context.Background(), event.ID, "Jamie Williams", "jamie@example.com")
	require.NoError(t, err)
	_, err = svc.CreateRSVP(context.Background(), event.ID, "Sam Park", "sam@example.com")
	require.NoError(t, err)
	_, err = svc.CreateRSVP(context.Background(), other.ID, "Alex Chen", "alex@example.com")
	require.NoError(t, err)

	count, err := svc.CountRSVPs(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, err = svc.CountRSVPs(context.Background(), 999)
	assert.ErrorIs(t, err, service.ErrEventNotFound)
}

func TestEventService_UpdateEvent(t *testing.T) {
	repo := newStubEventRepo()
	svc := service.NewEventService(repo)

	event, err := svc.CreateEvent(context.Background(), domain.Event{
		Title:   "Memorial Walk",
		StartAt: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	newTitle := "Annual Memorial Walk"
	published := true
	updated, err := svc.UpdateEvent(context.Background(), event.ID, domain.EventPatch{
		Title:       &newTitle,
		IsPublished: &published,
	})
	require.NoError(t, err)

	assert.Equal(t, "Annual Memorial Walk", updated.Title)
	assert.True(t, updated.IsPublished)
	assert.Equal(t, event.StartAt, updated.StartAt, "untouched fields keep their values")

	_, err = svc.UpdateEvent(context.Background(), 999, domain.EventPatch{Title: &newTitle})
	assert.ErrorIs(t, err, service.ErrEventNotFound)
}

func TestEventService_DeleteEvent(t *testing.T) {
	repo := newStubEventRepo()
	svc := service.NewEventService(repo)

	event, err := svc.CreateEvent(context.Background(), domain.Event{
		Title:   "Memorial Walk",
		StartAt: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(context.Background(), event.ID))
	assert.ErrorIs(t, svc.DeleteEvent(context.Background(), event.ID), service.ErrEventNotFound)
}
