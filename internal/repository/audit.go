package repository

import (
	"context"
	"fmt"

	"gorm.io/datatypes"

	"github.com/tdrmf/foundation-api/internal/domain"
	"github.com/tdrmf/foundation-api/internal/repository/dao"
)

type AuditDAO interface {
	Insert(ctx context.Context, entry dao.AuditLog) (dao.AuditLog, error)
	FindByEntity(ctx context.Context, entity string, entityID uint) ([]dao.AuditLog, error)
}

type AuditRepository struct {
	dao AuditDAO
}

func NewAuditRepository(dao AuditDAO) *AuditRepository {
	return &AuditRepository{
		dao: dao,
	}
}

func (r *AuditRepository) Create(ctx context.Context, entry domain.AuditLog) (domain.AuditLog, error) {
	created, err := r.dao.Insert(ctx, dao.AuditLog{
		ActorID:  entry.ActorID,
		Action:   entry.Action,
		Entity:   entry.Entity,
		EntityID: entry.EntityID,
		Meta:     datatypes.JSONMap(entry.Meta),
	})
	if err != nil {
		return domain.AuditLog{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AuditRepository) FindByEntity(ctx context.Context, entity string, entityID uint) ([]domain.AuditLog, error) {
	found, err := r.dao.FindByEntity(ctx, entity, entityID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEntity -> %w", err)
	}

	entries := make([]domain.AuditLog, 0, len(found))
	for _, e := range found {
		entries = append(entries, r.daoToDomain(e))
	}

	return entries, nil
}

func (r *AuditRepository) daoToDomain(e dao.AuditLog) domain.AuditLog {
	return domain.AuditLog{
		ID:        e.ID,
		ActorID:   e.ActorID,
		Action:    e.Action,
		Entity:    e.Entity,
		EntityID:  e.EntityID,
		Meta:      map[string]interface{}(e.Meta),
		CreatedAt: e.CreatedAt,
	}
}
