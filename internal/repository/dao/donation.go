package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrDonationNotFound = errors.New("donation not found")

type Donation struct {
	ID uint `gorm:"primaryKey"`

	AmountCents           int64  `gorm:"not null"`
	Currency              string `gorm:"not null;default:usd"`
	DonorEmail            string
	DonorName             string
	StripePaymentIntentID string `gorm:"index"`
	StripeSubscriptionID  string `gorm:"index"`
	Status                string `gorm:"not null;default:pending"`
	IsRecurring           bool   `gorm:"not null;default:false"`
	DedicationNote        string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type DonationStats struct {
	TotalAmountCents int64
	TotalCount       int64
	RecurringCount   int64
}

type DonationDAO struct {
	db *gorm.DB
}

func NewDonationDAO(db *gorm.DB) *DonationDAO {
	return &DonationDAO{
		db: db,
	}
}

func (d *DonationDAO) Insert(ctx context.Context, donation Donation) (Donation, error) {
	result := d.db.WithContext(ctx).Create(&donation)
	if result.Error != nil {
		return Donation{}, result.Error
	}

	return donation, nil
}

func (d *DonationDAO) FindByPaymentIntentID(ctx context.Context, intentID string) (Donation, error) {
	var donation Donation

	result := d.db.WithContext(ctx).
		First(&donation, "stripe_payment_intent_id = ? AND stripe_payment_intent_id <> ''", intentID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Donation{}, ErrDonationNotFound
		}

		return Donation{}, result.Error
	}

	return donation, nil
}

func (d *DonationDAO) FindBySubscriptionID(ctx context.Context, subscriptionID string) (Donation, error) {
	var donation Donation

	result := d.db.WithContext(ctx).
		First(&donation, "stripe_subscription_id = ? AND stripe_subscription_id <> ''", subscriptionID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Donation{}, ErrDonationNotFound
		}

		return Donation{}, result.Error
	}

	return donation, nil
}

// UpdateStatus is a single-statement write; the database's row lock is the
// only synchronization between concurrent webhook deliveries.
func (d *DonationDAO) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := d.db.WithContext(ctx).
		Model(&Donation{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDonationNotFound
	}

	return nil
}

func (d *DonationDAO) FindAll(ctx context.Context) ([]Donation, error) {
	var donations []Donation

	result := d.db.WithContext(ctx).Order("created_at desc").Find(&donations)
	if result.Error != nil {
		return nil, result.Error
	}

	return donations, nil
}

// Stats aggregates succeeded donations only.
func (d *DonationDAO) Stats(ctx context.Context) (DonationStats, error) {
	var stats DonationStats

	err := d.db.WithContext(ctx).
		Model(&Donation{}).
		Select("COALESCE(SUM(amount_cents), 0) AS total_amount_cents, COUNT(*) AS total_count").
		Where("status = ?", "succeeded").
		Scan(&stats).Error
	if err != nil {
		return DonationStats{}, err
	}

	err = d.db.WithContext(ctx).
		Model(&Donation{}).
		Where("status = ? AND is_recurring = ?", "succeeded", true).
		Count(&stats.RecurringCount).Error
	if err != nil {
		return DonationStats{}, err
	}

	return stats, nil
}
