package repository

import (
	"context"
	"fmt"

	"github.com/tdrmf/foundation-api/internal/domain"
	"github.com/tdrmf/foundation-api/internal/repository/dao"
)

type ContactDAO interface {
	Insert(ctx context.Context, message dao.ContactMessage) (dao.ContactMessage, error)
}

type ContactRepository struct {
	dao ContactDAO
}

func NewContactRepository(dao ContactDAO) *ContactRepository {
	return &ContactRepository{
		dao: dao,
	}
}

func (r *ContactRepository) Create(ctx context.Context, message domain.ContactMessage) (domain.ContactMessage, error) {
	created, err := r.dao.Insert(ctx, dao.ContactMessage{
		Name:    message.Name,
		Email:   message.Email,
		Subject: message.Subject,
		Message: message.Message,
	})
	if err != nil {
		return domain.ContactMessage{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return domain.ContactMessage{
		ID:        created.ID,
		Name:      created.Name,
		Email:     created.Email,
		Subject:   created.Subject,
		Message:   created.Message,
		CreatedAt: created.CreatedAt,
	}, nil
}
