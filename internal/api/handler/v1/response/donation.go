package response

type CheckoutResponse struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id,omitempty"`
	SubscriptionID  string `json:"subscription_id,omitempty"`
}

type WebhookResponse struct {
	Status string `json:"status"`
}
