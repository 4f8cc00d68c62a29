package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tdrmf/foundation-api/internal/domain"
	"github.com/tdrmf/foundation-api/internal/payment"
	"github.com/tdrmf/foundation-api/internal/repository"
)

var (
	ErrDonationNotFound = repository.ErrDonationNotFound
	ErrInvalidSignature = payment.ErrInvalidSignature
)

type DonationRepository interface {
	Create(ctx context.Context, donation domain.Donation) (domain.Donation, error)
	FindByPaymentIntentID(ctx context.Context, intentID string) (domain.Donation, error)
	FindBySubscriptionID(ctx context.Context, subscriptionID string) (domain.Donation, error)
	UpdateStatus(ctx context.Context, id uint, status domain.DonationStatus) error
	FindAll(ctx context.Context) ([]domain.Donation, error)
	Stats(ctx context.Context) (domain.DonationStats, error)
}

type PaymentProvider interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (payment.Intent, error)
	CreateSubscription(ctx context.Context, email, name string, amountCents int64, currency string, metadata map[string]string) (payment.Subscription, error)
	VerifyWebhook(payload []byte, signature string) (payment.Event, error)
}

type ReceiptMailer interface {
	SendDonationReceipt(to string, amountCents int64, donationID uint) error
}

// Checkout is what a donor needs to complete payment on the client side.
type Checkout struct {
	DonationID      uint
	ClientSecret    string
	PaymentIntentID string
	SubscriptionID  string
}

type DonationService struct {
	repo     DonationRepository
	provider PaymentProvider
	mailer   ReceiptMailer
}

func NewDonationService(repo DonationRepository, provider PaymentProvider, mailer ReceiptMailer) *DonationService {
	return &DonationService{
		repo:     repo,
		provider: provider,
		mailer:   mailer,
	}
}

// Checkout creates the processor-side payment object first and persists
// the pending donation after. If the database write fails the processor
// object is left behind with no local record; there is no compensation.
func (s *DonationService) Checkout(ctx context.Context, donation domain.Donation) (Checkout, error) {
	metadata := map[string]string{
		"donor_name": donation.DonorName,
		"dedication": donation.DedicationNote,
	}

	donation.Status = domain.DonationPending
	if donation.Currency == "" {
		donation.Currency = "usd"
	}

	if donation.IsRecurring {
		sub, err := s.provider.CreateSubscription(ctx, donation.DonorEmail, donation.DonorName, donation.AmountCents, donation.Currency, metadata)
		if err != nil {
			return Checkout{}, fmt.Errorf("s.provider.CreateSubscription -> %w", err)
		}
		donation.StripeSubscriptionID = sub.ID

		created, err := s.repo.Create(ctx, donation)
		if err != nil {
			return Checkout{}, fmt.Errorf("s.repo.Create -> %w", err)
		}

		return Checkout{
			DonationID:     created.ID,
			ClientSecret:   sub.ClientSecret,
			SubscriptionID: sub.ID,
		}, nil
	}

	metadata["donor_email"] = donation.DonorEmail
	intent, err := s.provider.CreatePaymentIntent(ctx, donation.AmountCents, donation.Currency, metadata)
	if err != nil {
		return Checkout{}, fmt.Errorf("s.provider.CreatePaymentIntent -> %w", err)
	}
	donation.StripePaymentIntentID = intent.ID

	created, err := s.repo.Create(ctx, donation)
	if err != nil {
		return Checkout{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return Checkout{
		DonationID:      created.ID,
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}

// HandleWebhook verifies the payload signature and applies the status
// transition the event reports. Unknown event types and events matching
// no local donation are accepted as no-ops, which also makes duplicate
// deliveries idempotent.
func (s *DonationService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.provider.VerifyWebhook(payload, signature)
	if err != nil {
		return fmt.Errorf("s.provider.VerifyWebhook -> %w", err)
	}

	switch event.Type {
	case payment.EventPaymentIntentSucceeded:
		return s.settleIntent(ctx, event.PaymentIntentID, domain.DonationSucceeded)
	case payment.EventPaymentIntentFailed:
		return s.settleIntent(ctx, event.PaymentIntentID, domain.DonationFailed)
	case payment.EventSubscriptionCreated:
		return s.settleSubscription(ctx, event.SubscriptionID)
	default:
		return nil
	}
}

func (s *DonationService) settleIntent(ctx context.Context, intentID string, status domain.DonationStatus) error {
	donation, err := s.repo.FindByPaymentIntentID(ctx, intentID)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return nil
		}

		return fmt.Errorf("s.repo.FindByPaymentIntentID -> %w", err)
	}

	if err = s.repo.UpdateStatus(ctx, donation.ID, status); err != nil {
		return fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	// The status change is committed; a failed receipt send is logged
	// and never rolled back.
	if status == domain.DonationSucceeded && donation.DonorEmail != "" {
		if err = s.mailer.SendDonationReceipt(donation.DonorEmail, donation.AmountCents, donation.ID); err != nil {
			zap.L().Warn("failed to send donation receipt",
				zap.Uint("donation_id", donation.ID),
				zap.Error(err))
		}
	}

	return nil
}

func (s *DonationService) settleSubscription(ctx context.Context, subscriptionID string) error {
	donation, err := s.repo.FindBySubscriptionID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return nil
		}

		return fmt.Errorf("s.repo.FindBySubscriptionID -> %w", err)
	}

	if err = s.repo.UpdateStatus(ctx, donation.ID, domain.DonationSucceeded); err != nil {
		return fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	return nil
}

func (s *DonationService) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	donations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return donations, nil
}

func (s *DonationService) Stats(ctx context.Context) (domain.DonationStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return domain.DonationStats{}, fmt.Errorf("s.repo.Stats -> %w", err)
	}

	return stats, nil
}
