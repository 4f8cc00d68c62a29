package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrPhotoNotFound = errors.New("gallery photo not found")

type GalleryPhoto struct {
	ID uint `gorm:"primaryKey"`

	Title         string `gorm:"not null"`
	Description   string `gorm:"type:text"`
	UploaderName  string `gorm:"not null"`
	UploaderEmail string `gorm:"not null"`
	StorageKey    string `gorm:"not null"`
	Approved      bool   `gorm:"not null;default:false"`
	ConsentSigned bool   `gorm:"not null"`
	ConsentIP     string

	SubmittedAt time.Time `gorm:"not null;autoCreateTime"`
	ApprovedAt  *time.Time
}

type GalleryDAO struct {
	db *gorm.DB
}

func NewGalleryDAO(db *gorm.DB) *GalleryDAO {
	return &GalleryDAO{
		db: db,
	}
}

func (d *GalleryDAO) Insert(ctx context.Context, photo GalleryPhoto) (GalleryPhoto, error) {
	result := d.db.WithContext(ctx).Create(&photo)
	if result.Error != nil {
		return GalleryPhoto{}, result.Error
	}

	return photo, nil
}

func (d *GalleryDAO) FindByID(ctx context.Context, id uint) (GalleryPhoto, error) {
	var photo GalleryPhoto

	result := d.db.WithContext(ctx).First(&photo, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return GalleryPhoto{}, ErrPhotoNotFound
		}

		return GalleryPhoto{}, result.Error
	}

	return photo, nil
}

func (d *GalleryDAO) FindApproved(ctx context.Context, offset, limit int) ([]GalleryPhoto, error) {
	var photos []GalleryPhoto

	result := d.db.WithContext(ctx).
		Where("approved = ?", true).
		Order("submitted_at desc").
		Offset(offset).
		Limit(limit).
		Find(&photos)
	if result.Error != nil {
		return nil, result.Error
	}

	return photos, nil
}

func (d *GalleryDAO) FindPending(ctx context.Context) ([]GalleryPhoto, error) {
	var photos []GalleryPhoto

	result := d.db.WithContext(ctx).
		Where("approved = ?", false).
		Order("submitted_at desc").
		Find(&photos)
	if result.Error != nil {
		return nil, result.Error
	}

	return photos, nil
}

func (d *GalleryDAO) Update(ctx context.Context, photo GalleryPhoto) (GalleryPhoto, error) {
	result := d.db.WithContext(ctx).Save(&photo)
	if result.Error != nil {
		return GalleryPhoto{}, result.Error
	}

	return photo, nil
}

func (d *GalleryDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&GalleryPhoto{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPhotoNotFound
	}

	return nil
}
