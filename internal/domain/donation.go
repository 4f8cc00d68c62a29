package domain

import "time"

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationSucceeded DonationStatus = "succeeded"
	DonationFailed    DonationStatus = "failed"
)

type Donation struct {
	ID                    uint           `json:"id"`
	AmountCents           int64          `json:"amount_cents"`
	Currency              string         `json:"currency"`
	DonorEmail            string         `json:"donor_email"`
	DonorName             string         `json:"donor_name"`
	StripePaymentIntentID string         `json:"stripe_payment_intent_id"`
	StripeSubscriptionID  string         `json:"stripe_subscription_id"`
	Status                DonationStatus `json:"status"`
	IsRecurring           bool           `json:"is_recurring"`
	DedicationNote        string         `json:"dedication_note"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

// DonationStats aggregates succeeded donations only; pending and failed
// records are never counted.
type DonationStats struct {
	TotalAmountCents int64 `json:"total_amount_cents"`
	TotalCount       int64 `json:"total_count"`
	RecurringCount   int64 `json:"recurring_count"`
}
