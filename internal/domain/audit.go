package domain

import "time"

// AuditLog rows are append-only; nothing in the service layer updates or
// deletes them.
type AuditLog struct {
	ID        uint                   `json:"id"`
	ActorID   uint                   `json:"actor_id"`
	Action    string                 `json:"action"`
	Entity    string                 `json:"entity"`
	EntityID  uint                   `json:"entity_id"`
	Meta      map[string]interface{} `json:"meta"`
	CreatedAt time.Time              `json:"created_at"`
}
