package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdrmf/foundation-api/internal/domain"
	"github.com/tdrmf/foundation-api/internal/service"
)

type stubAuditRepo struct {
	entries   []domain.AuditLog
	createErr error
}

func (r *stubAuditRepo) Create(_ context.Context, entry domain.AuditLog) (domain.AuditLog, error) {
	if r.createErr != nil {
		return domain.AuditLog{}, r.createErr
	}

	entry.ID = uint(len(r.entries) + 1)
	r.entries = append(r.entries, entry)

	return entry, nil
}

func (r *stubAuditRepo) FindByEntity(_ context.Context, entity string, entityID uint) ([]domain.AuditLog, error) {
	var matched []domain.AuditLog
	for _, e := range r.entries {
		if e.Entity == entity && e.EntityID == entityID {
			matched = append(matched, e)
		}
	}

	return matched, nil
}

func TestAuditService_RecordAndHistory(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := service.NewAuditService(repo)
	ctx := context.Background()

	svc.Record(ctx, 1, "create", "event", 7, map[string]interface{}{"title": "Memorial Walk"})
	svc.Record(ctx, 1, "update", "event", 7, nil)
	svc.Record(ctx, 1, "delete", "sponsor_tier", 3, nil)

	history, err := svc.History(ctx, "event", 7)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, "create", history[0].Action)
	assert.Equal(t, "update", history[1].Action)
}

func TestAuditService_Record_FailureIsSwallowed(t *testing.T) {
	repo := &stubAuditRepo{createErr: errors.New("db down")}
	svc := service.NewAuditService(repo)

	// Record never panics or surfaces errors; the audited write already
	// committed by the time it runs.
	svc.Record(context.Background(), 1, "create", "event", 7, nil)
	assert.Empty(t, repo.entries)
}
