package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CheckoutRequest struct {
	AmountCents    int64  `json:"amount_cents"`
	Currency       string `json:"currency"`
	DonorEmail     string `json:"donor_email"`
	DonorName      string `json:"donor_name"`
	IsRecurring    bool   `json:"is_recurring"`
	DedicationNote string `json:"dedication_note"`
}

func (req *CheckoutRequest) Validate() error {
	rules := []*validation.FieldRules{
		validation.Field(&req.AmountCents, validation.Required, validation.Min(int64(100))),
		validation.Field(&req.Currency, validation.In("", "usd")),
		validation.Field(&req.DonorEmail, is.Email),
	}

	// A recurring donation needs a processor-side customer, which needs
	// an email.
	if req.IsRecurring {
		rules = append(rules, validation.Field(&req.DonorEmail, validation.Required, is.Email))
	}

	return validation.ValidateStruct(req, rules...)
}
