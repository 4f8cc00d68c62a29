package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
	"github.com/stripe/stripe-go/v72/webhook"
)

// Event types forwarded to the donation service. Anything else is ignored
// by the webhook handler.
const (
	EventPaymentIntentSucceeded = "payment_intent.succeeded"
	EventPaymentIntentFailed    = "payment_intent.payment_failed"
	EventSubscriptionCreated    = "customer.subscription.created"
)

var ErrInvalidSignature = fmt.Errorf("invalid webhook signature")

// Intent is the slice of a Stripe payment intent the service layer needs.
type Intent struct {
	ID           string
	ClientSecret string
}

// Subscription carries the subscription id and the client secret of its
// first invoice's payment intent.
type Subscription struct {
	ID           string
	ClientSecret string
}

// Event is a verified webhook event reduced to the identifiers this
// system looks donations up by.
type Event struct {
	Type            string
	PaymentIntentID string
	SubscriptionID  string
}

type StripeClient struct {
	api           *client.API
	webhookSecret string
}

func NewStripeClient(secretKey, webhookSecret string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeClient{
		api:           api,
		webhookSecret: webhookSecret,
	}
}

func (c *StripeClient) CreatePaymentIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return Intent{}, fmt.Errorf("c.api.PaymentIntents.New -> %w", err)
	}

	return Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// CreateSubscription creates the customer, a monthly price and the
// subscription in sequence. Any failure aborts the whole operation with
// nothing persisted locally; objects already created on the Stripe side
// are left behind.
func (c *StripeClient) CreateSubscription(ctx context.Context, email, name string, amountCents int64, currency string, metadata map[string]string) (Subscription, error) {
	custParams := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	custParams.Context = ctx
	if name != "" {
		custParams.Name = stripe.String(name)
	}
	customer, err := c.api.Customers.New(custParams)
	if err != nil {
		return Subscription{}, fmt.Errorf("c.api.Customers.New -> %w", err)
	}

	priceParams := &stripe.PriceParams{
		UnitAmount: stripe.Int64(amountCents),
		Currency:   stripe.String(currency),
		Recurring: &stripe.PriceRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		},
		ProductData: &stripe.PriceProductDataParams{
			Name: stripe.String("Monthly Donation"),
		},
	}
	priceParams.Context = ctx
	price, err := c.api.Prices.New(priceParams)
	if err != nil {
		return Subscription{}, fmt.Errorf("c.api.Prices.New -> %w", err)
	}

	subParams := &stripe.SubscriptionParams{
		Customer: stripe.String(customer.ID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(price.ID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
	}
	subParams.Context = ctx
	for k, v := range metadata {
		subParams.AddMetadata(k, v)
	}
	subParams.AddExpand("latest_invoice.payment_intent")

	sub, err := c.api.Subscriptions.New(subParams)
	if err != nil {
		return Subscription{}, fmt.Errorf("c.api.Subscriptions.New -> %w", err)
	}

	result := Subscription{ID: sub.ID}
	if sub.LatestInvoice != nil && sub.LatestInvoice.PaymentIntent != nil {
		result.ClientSecret = sub.LatestInvoice.PaymentIntent.ClientSecret
	}

	return result, nil
}

func (c *StripeClient) VerifyWebhook(payload []byte, signature string) (Event, error) {
	stripeEvent, err := webhook.ConstructEvent(payload, signature, c.webhookSecret)
	if err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	event := Event{Type: stripeEvent.Type}

	var object struct {
		ID string `json:"id"`
	}
	if err = json.Unmarshal(stripeEvent.Data.Raw, &object); err != nil {
		return Event{}, fmt.Errorf("json.Unmarshal event object -> %w", err)
	}

	switch stripeEvent.Type {
	case EventPaymentIntentSucceeded, EventPaymentIntentFailed:
		event.PaymentIntentID = object.ID
	case EventSubscriptionCreated:
		event.SubscriptionID = object.ID
	}

	return event, nil
}
