package repository

import (
	"context"
	"fmt"

	"gorm.io/datatypes"

	"github.com/tdrmf/foundation-api/internal/domain"
	"github.com/tdrmf/foundation-api/internal/repository/dao"
)

var ErrTierNotFound = dao.ErrTierNotFound

type SponsorDAO interface {
	Insert(ctx context.Context, tier dao.SponsorTier) (dao.SponsorTier, error)
	FindByID(ctx context.Context, id uint) (dao.SponsorTier, error)
	FindActive(ctx context.Context) ([]dao.SponsorTier, error)
	FindAll(ctx context.Context) ([]dao.SponsorTier, error)
	Update(ctx context.Context, tier dao.SponsorTier) (dao.SponsorTier, error)
	Delete(ctx context.Context, id uint) error
}

type SponsorRepository struct {
	dao SponsorDAO
}

func NewSponsorRepository(dao SponsorDAO) *SponsorRepository {
	return &SponsorRepository{
		dao: dao,
	}
}

func (r *SponsorRepository) Create(ctx context.Context, tier domain.SponsorTier) (domain.SponsorTier, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(tier))
	if err != nil {
		return domain.SponsorTier{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SponsorRepository) FindByID(ctx context.Context, id uint) (domain.SponsorTier, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.SponsorTier{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SponsorRepository) FindActive(ctx context.Context) ([]domain.SponsorTier, error) {
	found, err := r.dao.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActive -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *SponsorRepository) FindAll(ctx context.Context) ([]domain.SponsorTier, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *SponsorRepository) Update(ctx context.Context, tier domain.SponsorTier) (domain.SponsorTier, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(tier))
	if err != nil {
		return domain.SponsorTier{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *SponsorRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *SponsorRepository) domainToDAO(t domain.SponsorTier) dao.SponsorTier {
	return dao.SponsorTier{
		ID:          t.ID,
		Name:        t.Name,
		AmountCents: t.AmountCents,
		Benefits:    datatypes.JSONMap(t.Benefits),
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
	}
}

func (r *SponsorRepository) daoToDomain(t dao.SponsorTier) domain.SponsorTier {
	return domain.SponsorTier{
		ID:          t.ID,
		Name:        t.Name,
		AmountCents: t.AmountCents,
		Benefits:    map[string]interface{}(t.Benefits),
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *SponsorRepository) daoToDomainSlice(found []dao.SponsorTier) []domain.SponsorTier {
	tiers := make([]domain.SponsorTier, 0, len(found))
	for _, t := range found {
		tiers = append(tiers, r.daoToDomain(t))
	}

	return tiers
}
