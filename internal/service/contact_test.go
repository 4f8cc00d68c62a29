package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdrmf/foundation-api/internal/domain"
	"github.com/tdrmf/foundation-api/internal/service"
)

type stubContactRepo struct {
	messages []domain.ContactMessage
}

func (r *stubContactRepo) Create(_ context.Context, message domain.ContactMessage) (domain.ContactMessage, error) {
	message.ID = uint(len(r.messages) + 1)
	r.messages = append(r.messages, message)

	return message, nil
}

type stubNotificationMailer struct {
	notifications int
	err           error
}

func (m *stubNotificationMailer) SendContactNotification(_, _, _, _ string) error {
	m.notifications++

	return m.err
}

func TestContactService_Submit(t *testing.T) {
	repo := &stubContactRepo{}
	mailer := &stubNotificationMailer{}
	svc := service.NewContactService(repo, mailer)

	message, err := svc.Submit(context.Background(), domain.ContactMessage{
		Name:    "Jamie Williams",
		Email:   "jamie@example.com",
		Message: "How can I volunteer?",
	})
	require.NoError(t, err)

	assert.NotZero(t, message.ID)
	assert.Len(t, repo.messages, 1)
	assert.Equal(t, 1, mailer.notifications)
}

func TestContactService_Submit_MailerFailureIsNotFatal(t *testing.T) {
	repo := &stubContactRepo{}
	mailer := &stubNotificationMailer{err: errors.New("smtp unreachable")}
	svc := service.NewContactService(repo, mailer)

	message, err := svc.Submit(context.Background(), domain.ContactMessage{
		Name:    "Jamie Williams",
		Email:   "jamie@example.com",
		Message: "How can I volunteer?",
	})
	require.NoError(t, err, "a failed notification must not fail the submission")

	assert.NotZero(t, message.ID)
	assert.Len(t, repo.messages, 1)
}
