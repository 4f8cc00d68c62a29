package dao_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdrmf/foundation-api/internal/repository/dao"
)

func TestAuditDAO_InsertAndFindByEntity(t *testing.T) {
	db := newTestDB(t)
	auditDAO := dao.NewAuditDAO(db)
	userDAO := dao.NewUserDAO(db)
	ctx := context.Background()

	actor, err := userDAO.Insert(ctx, dao.User{
		Email:    "admin@example.com",
		Password: "hashed",
		Role:     "admin",
	})
	require.NoError(t, err)

	_, err = auditDAO.Insert(ctx, dao.AuditLog{
		ActorID:  actor.ID,
		Action:   "create",
		Entity:   "event",
		EntityID: 1,
		Meta:     map[string]interface{}{"title": "Memorial Walk"},
	})
	require.NoError(t, err)

	_, err = auditDAO.Insert(ctx, dao.AuditLog{
		ActorID:  actor.ID,
		Action:   "update",
		Entity:   "event",
		EntityID: 1,
	})
	require.NoError(t, err)

	_, err = auditDAO.Insert(ctx, dao.AuditLog{
		ActorID:  actor.ID,
		Action:   "delete",
		Entity:   "sponsor_tier",
		EntityID: 7,
	})
	require.NoError(t, err)

	entries, err := auditDAO.FindByEntity(ctx, "event", 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Oldest first.
	assert.Equal(t, "create", entries[0].Action)
	assert.Equal(t, "update", entries[1].Action)

	other, err := auditDAO.FindByEntity(ctx, "event", 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}
