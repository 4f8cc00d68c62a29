package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tdrmf/foundation-api/internal/domain"
)

type ContactRepository interface {
	Create(ctx context.Context, message domain.ContactMessage) (domain.ContactMessage, error)
}

type NotificationMailer interface {
	SendContactNotification(name, email, subject, message string) error
}

type ContactService struct {
	repo   ContactRepository
	mailer NotificationMailer
}

func NewContactService(repo ContactRepository, mailer NotificationMailer) *ContactService {
	return &ContactService{
		repo:   repo,
		mailer: mailer,
	}
}

// Submit persists the message, then sends the notification best-effort; a
// failed send is logged and does not fail the request.
func (s *ContactService) Submit(ctx context.Context, message domain.ContactMessage) (domain.ContactMessage, error) {
	created, err := s.repo.Create(ctx, message)
	if err != nil {
		return domain.ContactMessage{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if err = s.mailer.SendContactNotification(created.Name, created.Email, created.Subject, created.Message); err != nil {
		zap.L().Warn("failed to send contact notification",
			zap.Uint("message_id", created.ID),
			zap.Error(err))
	}

	return created, nil
}
