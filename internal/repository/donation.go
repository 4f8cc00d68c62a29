package repository

import (
	"context"
	"fmt"

	"github.com/tdrmf/foundation-api/internal/domain"
	"github.com/tdrmf/foundation-api/internal/repository/dao"
)

var ErrDonationNotFound = dao.ErrDonationNotFound

type DonationDAO interface {
	Insert(ctx context.Context, donation dao.Donation) (dao.Donation, error)
	FindByPaymentIntentID(ctx context.Context, intentID string) (dao.Donation, error)
	FindBySubscriptionID(ctx context.Context, subscriptionID string) (dao.Donation, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	FindAll(ctx context.Context) ([]dao.Donation, error)
	Stats(ctx context.Context) (dao.DonationStats, error)
}

type DonationRepository struct {
	dao DonationDAO
}

func NewDonationRepository(dao DonationDAO) *DonationRepository {
	return &DonationRepository{
		dao: dao,
	}
}

func (r *DonationRepository) Create(ctx context.Context, donation domain.Donation) (domain.Donation, error) {
	created, err := r.dao.Insert(ctx, dao.Donation{
		AmountCents:           donation.AmountCents,
		Currency:              donation.Currency,
		DonorEmail:            donation.DonorEmail,
		DonorName:             donation.DonorName,
		StripePaymentIntentID: donation.StripePaymentIntentID,
		StripeSubscriptionID:  donation.StripeSubscriptionID,
		Status:                string(donation.Status),
		IsRecurring:           donation.IsRecurring,
		DedicationNote:        donation.DedicationNote,
	})
	if err != nil {
		return domain.Donation{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *DonationRepository) FindByPaymentIntentID(ctx context.Context, intentID string) (domain.Donation, error) {
	found, err := r.dao.FindByPaymentIntentID(ctx, intentID)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("r.dao.FindByPaymentIntentID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *DonationRepository) FindBySubscriptionID(ctx context.Context, subscriptionID string) (domain.Donation, error) {
	found, err := r.dao.FindBySubscriptionID(ctx, subscriptionID)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("r.dao.FindBySubscriptionID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *DonationRepository) UpdateStatus(ctx context.Context, id uint, status domain.DonationStatus) error {
	if err := r.dao.UpdateStatus(ctx, id, string(status)); err != nil {
		return fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return nil
}

func (r *DonationRepository) FindAll(ctx context.Context) ([]domain.Donation, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	donations := make([]domain.Donation, 0, len(found))
	for _, d := range found {
		donations = append(donations, r.daoToDomain(d))
	}

	return donations, nil
}

func (r *DonationRepository) Stats(ctx context.Context) (domain.DonationStats, error) {
	stats, err := r.dao.Stats(ctx)
	if err != nil {
		return domain.DonationStats{}, fmt.Errorf("r.dao.Stats -> %w", err)
	}

	return domain.DonationStats{
		TotalAmountCents: stats.TotalAmountCents,
		TotalCount:       stats.TotalCount,
		RecurringCount:   stats.RecurringCount,
	}, nil
}

func (r *DonationRepository) daoToDomain(d dao.Donation) domain.Donation {
	return domain.Donation{
		ID:                    d.ID,
		AmountCents:           d.AmountCents,
		Currency:              d.Currency,
		DonorEmail:            d.DonorEmail,
		DonorName:             d.DonorName,
		StripePaymentIntentID: d.StripePaymentIntentID,
		StripeSubscriptionID:  d.StripeSubscriptionID,
		Status:                domain.DonationStatus(d.Status),
		IsRecurring:           d.IsRecurring,
		DedicationNote:        d.DedicationNote,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
}
