package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrTierNotFound = errors.New("sponsor tier not found")

type SponsorTier struct {
	ID uint `gorm:"primaryKey"`

	Name        string            `gorm:"not null"`
	AmountCents int64             `gorm:"not null"`
	Benefits    datatypes.JSONMap
	IsActive    bool              `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type SponsorDAO struct {
	db *gorm.DB
}

func NewSponsorDAO(db *gorm.DB) *SponsorDAO {
	return &SponsorDAO{
		db: db,
	}
}

func (d *SponsorDAO) Insert(ctx context.Context, tier SponsorTier) (SponsorTier, error) {
	result := d.db.WithContext(ctx).Create(&tier)
	if result.Error != nil {
		return SponsorTier{}, result.Error
	}

	return tier, nil
}

func (d *SponsorDAO) FindByID(ctx context.Context, id uint) (SponsorTier, error) {
	var tier SponsorTier

	result := d.db.WithContext(ctx).First(&tier, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return SponsorTier{}, ErrTierNotFound
		}

		return SponsorTier{}, result.Error
	}

	return tier, nil
}

func (d *SponsorDAO) FindActive(ctx context.Context) ([]SponsorTier, error) {
	var tiers []SponsorTier

	result := d.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("amount_cents desc").
		Find(&tiers)
	if result.Error != nil {
		return nil, result.Error
	}

	return tiers, nil
}

func (d *SponsorDAO) FindAll(ctx context.Context) ([]SponsorTier, error) {
	var tiers []SponsorTier

	result := d.db.WithContext(ctx).Order("amount_cents desc").Find(&tiers)
	if result.Error != nil {
		return nil, result.Error
	}

	return tiers, nil
}

func (d *SponsorDAO) Update(ctx context.Context, tier SponsorTier) (SponsorTier, error) {
	result := d.db.WithContext(ctx).Save(&tier)
	if result.Error != nil {
		return SponsorTier{}, result.Error
	}

	return tier, nil
}

func (d *SponsorDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&SponsorTier{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTierNotFound
	}

	return nil
}
