package domain

import "time"

// RoleAdmin is the only role issued in practice; kept as a column so the
// model does not need a migration if more roles ever appear.
const RoleAdmin = "admin"

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
