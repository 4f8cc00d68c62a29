package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tdrmf/foundation-api/internal/api/handler/v1/request"
)

func TestCheckoutRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     request.CheckoutRequest
		wantErr bool
	}{
		{
			name: "valid one-time",
			req:  request.CheckoutRequest{AmountCents: 2500},
		},
		{
			name: "valid recurring with email",
			req: request.CheckoutRequest{
				AmountCents: 1000,
				DonorEmail:  "donor@example.com",
				IsRecurring: true,
			},
		},
		{
			name:    "amount below minimum",
			req:     request.CheckoutRequest{AmountCents: 99},
			wantErr: true,
		},
		{
			name:    "missing amount",
			req:     request.CheckoutRequest{},
			wantErr: true,
		},
		{
			name:    "unsupported currency",
			req:     request.CheckoutRequest{AmountCents: 2500, Currency: "eur"},
			wantErr: true,
		},
		{
			name:    "recurring without email",
			req:     request.CheckoutRequest{AmountCents: 1000, IsRecurring: true},
			wantErr: true,
		},
		{
			name:    "malformed email",
			req:     request.CheckoutRequest{AmountCents: 2500, DonorEmail: "not-an-email"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
