package dao_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdrmf/foundation-api/internal/repository/dao"
)

func TestEventDAO_FindPublishedUpcoming(t *testing.T) {
	eventDAO := dao.NewEventDAO(newTestDB(t))
	ctx := context.Background()
	now := time.Now()

	_, err := eventDAO.Insert(ctx, dao.Event{
		Title:       "Past Walk",
		StartAt:     now.Add(-24 * time.Hour),
		IsPublished: true,
	})
	require.NoError(t, err)

	_, err = eventDAO.Insert(ctx, dao.Event{
		Title:   "Unpublished Gala",
		StartAt: now.Add(24 * time.Hour),
	})
	require.NoError(t, err)

	later, err := eventDAO.Insert(ctx, dao.Event{
		Title:       "Mentorship Kickoff",
		StartAt:     now.Add(72 * time.Hour),
		IsPublished: true,
	})
	require.NoError(t, err)

	sooner, err := eventDAO.Insert(ctx, dao.Event{
		Title:       "Memorial Walk",
		StartAt:     now.Add(24 * time.Hour),
		IsPublished: true,
	})
	require.NoError(t, err)

	upcoming, err := eventDAO.FindPublishedUpcoming(ctx, now)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)

	// Soonest first.
	assert.Equal(t, sooner.ID, upcoming[0].ID)
	assert.Equal(t, later.ID, upcoming[1].ID)
}

func TestEventDAO_IsPublishedDefaultsToFalse(t *testing.T) {
	eventDAO := dao.NewEventDAO(newTestDB(t))
	ctx := context.Background()

	created, err := eventDAO.Insert(ctx, dao.Event{
		Title:   "Draft",
		StartAt: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	found, err := eventDAO.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, found.IsPublished)
}

func TestEventDAO_Delete(t *testing.T) {
	eventDAO := dao.NewEventDAO(newTestDB(t))
	ctx := context.Background()

	created, err := eventDAO.Insert(ctx, dao.Event{
		Title:   "Memorial Walk",
		StartAt: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, eventDAO.Delete(ctx, created.ID))
	assert.ErrorIs(t, eventDAO.Delete(ctx, created.ID), dao.ErrEventNotFound)
}

func TestEventDAO_InsertRSVP(t *testing.T) {
	eventDAO := dao.NewEventDAO(newTestDB(t))
	ctx := context.Background()

	event, err := eventDAO.Insert(ctx, dao.Event{
		Title:       "Memorial Walk",
		StartAt:     time.Now().Add(24 * time.Hour),
		IsPublished: true,
	})
	require.NoError(t, err)

	rsvp, err := eventDAO.InsertRSVP(ctx, dao.RSVP{
		EventID: event.ID,
		Name:    "Jamie Williams",
		Email:   "jamie@example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, rsvp.ID)

	count, err := eventDAO.CountRSVPsByEventID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
