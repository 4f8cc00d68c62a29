package dao_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdrmf/foundation-api/internal/repository/dao"
)

func TestUserDAO_Insert_DuplicateEmail(t *testing.T) {
	userDAO := dao.NewUserDAO(newTestDB(t))
	ctx := context.Background()

	_, err := userDAO.Insert(ctx, dao.User{
		Email:    "admin@example.com",
		Password: "hashed",
		Role:     "admin",
	})
	require.NoError(t, err)

	_, err = userDAO.Insert(ctx, dao.User{
		Email:    "admin@example.com",
		Password: "other",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, dao.ErrUserEmailExists)
}

func TestUserDAO_FindByEmail(t *testing.T) {
	userDAO := dao.NewUserDAO(newTestDB(t))
	ctx := context.Background()

	created, err := userDAO.Insert(ctx, dao.User{
		Email:    "admin@example.com",
		Password: "hashed",
		Role:     "admin",
	})
	require.NoError(t, err)

	found, err := userDAO.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = userDAO.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, dao.ErrUserNotFound)

	_, err = userDAO.FindByID(ctx, 999)
	assert.ErrorIs(t, err, dao.ErrUserNotFound)
}
