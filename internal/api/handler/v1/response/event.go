package response

type RSVPResponse struct {
	Message     string `json:"message,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id,omitempty"`
}

type RSVPCountResponse struct {
	EventID uint  `json:"event_id"`
	Count   int64 `json:"count"`
}
