package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tdrmf/foundation-api/internal/domain"
)

type AuditRepository interface {
	Create(ctx context.Context, entry domain.AuditLog) (domain.AuditLog, error)
	FindByEntity(ctx context.Context, entity string, entityID uint) ([]domain.AuditLog, error)
}

type AuditService struct {
	repo AuditRepository
}

func NewAuditService(repo AuditRepository) *AuditService {
	return &AuditService{
		repo: repo,
	}
}

// Record appends an audit entry. It is called after the audited write has
// committed, so failures are logged rather than surfaced.
func (s *AuditService) Record(ctx context.Context, actorID uint, action, entity string, entityID uint, meta map[string]interface{}) {
	_, err := s.repo.Create(ctx, domain.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Meta:     meta,
	})
	if err != nil {
		zap.L().Warn("failed to write audit log",
			zap.String("action", action),
			zap.String("entity", entity),
			zap.Uint("entity_id", entityID),
			zap.Error(err))
	}
}

func (s *AuditService) History(ctx context.Context, entity string, entityID uint) ([]domain.AuditLog, error) {
	entries, err := s.repo.FindByEntity(ctx, entity, entityID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEntity -> %w", err)
	}

	return entries, nil
}
