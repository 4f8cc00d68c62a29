package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tdrmf/foundation-api/internal/domain"
	"github.com/tdrmf/foundation-api/internal/repository"
)

var ErrTierNotFound = repository.ErrTierNotFound

type SponsorRepository interface {
	Create(ctx context.Context, tier domain.SponsorTier) (domain.SponsorTier, error)
	FindByID(ctx context.Context, id uint) (domain.SponsorTier, error)
	FindActive(ctx context.Context) ([]domain.SponsorTier, error)
	FindAll(ctx context.Context) ([]domain.SponsorTier, error)
	Update(ctx context.Context, tier domain.SponsorTier) (domain.SponsorTier, error)
	Delete(ctx context.Context, id uint) error
}

type SponsorService struct {
	repo SponsorRepository
}

func NewSponsorService(repo SponsorRepository) *SponsorService {
	return &SponsorService{
		repo: repo,
	}
}

func (s *SponsorService) ListActive(ctx context.Context) ([]domain.SponsorTier, error) {
	tiers, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindActive -> %w", err)
	}

	return tiers, nil
}

func (s *SponsorService) CreateTier(ctx context.Context, tier domain.SponsorTier) (domain.SponsorTier, error) {
	created, err := s.repo.Create(ctx, tier)
	if err != nil {
		return domain.SponsorTier{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *SponsorService) ListAll(ctx context.Context) ([]domain.SponsorTier, error) {
	tiers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return tiers, nil
}

func (s *SponsorService) UpdateTier(ctx context.Context, id uint, patch domain.SponsorTierPatch) (domain.SponsorTier, error) {
	tier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTierNotFound) {
			return domain.SponsorTier{}, ErrTierNotFound
		}

		return domain.SponsorTier{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	patch.Apply(&tier)

	updated, err := s.repo.Update(ctx, tier)
	if err != nil {
		return domain.SponsorTier{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *SponsorService) DeleteTier(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTierNotFound) {
			return ErrTierNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
