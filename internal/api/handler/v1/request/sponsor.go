package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateSponsorTierRequest struct {
	Name        string                 `json:"name"`
	AmountCents int64                  `json:"amount_cents"`
	Benefits    map[string]interface{} `json:"benefits"`
	IsActive    *bool                  `json:"is_active"`
}

func (req *CreateSponsorTierRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.AmountCents, validation.Required, validation.Min(int64(1))),
	)
}

type UpdateSponsorTierRequest struct {
	Name        *string                `json:"name"`
	AmountCents *int64                 `json:"amount_cents"`
	Benefits    map[string]interface{} `json:"benefits"`
	IsActive    *bool                  `json:"is_active"`
}

func (req *UpdateSponsorTierRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(2, 100)),
	)
}
