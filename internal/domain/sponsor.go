package domain

import "time"

type SponsorTier struct {
	ID          uint                   `json:"id"`
	Name        string                 `json:"name"`
	AmountCents int64                  `json:"amount_cents"`
	Benefits    map[string]interface{} `json:"benefits"`
	IsActive    bool                   `json:"is_active"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// SponsorTierPatch is a partial update; nil fields are left untouched.
type SponsorTierPatch struct {
	Name        *string
	AmountCents *int64
	Benefits    map[string]interface{}
	IsActive    *bool
}

func (p SponsorTierPatch) Apply(t *SponsorTier) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.AmountCents != nil {
		t.AmountCents = *p.AmountCents
	}
	if p.Benefits != nil {
		t.Benefits = p.Benefits
	}
	if p.IsActive != nil {
		t.IsActive = *p.IsActive
	}
}
