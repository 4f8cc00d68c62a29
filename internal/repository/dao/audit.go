package dao

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditLog struct {
	ID uint `gorm:"primaryKey"`

	ActorID  uint   `gorm:"index"`
	Actor    User   `gorm:"constraint:OnDelete:SET NULL"`
	Action   string `gorm:"not null"`
	Entity   string `gorm:"not null"`
	EntityID uint
	Meta     datatypes.JSONMap

	CreatedAt time.Time `gorm:"not null"`
}

type AuditDAO struct {
	db *gorm.DB
}

func NewAuditDAO(db *gorm.DB) *AuditDAO {
	return &AuditDAO{
		db: db,
	}
}

func (d *AuditDAO) Insert(ctx context.Context, entry AuditLog) (AuditLog, error) {
	result := d.db.WithContext(ctx).Omit("Actor").Create(&entry)
	if result.Error != nil {
		return AuditLog{}, result.Error
	}

	return entry, nil
}

func (d *AuditDAO) FindByEntity(ctx context.Context, entity string, entityID uint) ([]AuditLog, error) {
	var entries []AuditLog

	result := d.db.WithContext(ctx).
		Where("entity = ? AND entity_id = ?", entity, entityID).
		Order("created_at asc").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}
