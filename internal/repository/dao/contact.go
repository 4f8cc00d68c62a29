package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type ContactMessage struct {
	ID uint `gorm:"primaryKey"`

	Name    string `gorm:"not null"`
	Email   string `gorm:"not null"`
	Subject string
	Message string `gorm:"type:text;not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type ContactDAO struct {
	db *gorm.DB
}

func NewContactDAO(db *gorm.DB) *ContactDAO {
	return &ContactDAO{
		db: db,
	}
}

func (d *ContactDAO) Insert(ctx context.Context, message ContactMessage) (ContactMessage, error) {
	result := d.db.WithContext(ctx).Create(&message)
	if result.Error != nil {
		return ContactMessage{}, result.Error
	}

	return message, nil
}
