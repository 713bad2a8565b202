// Package domain holds DTOs for the auth http contract
package domain

import (
	"time"

	"github.com/google/uuid"
)

// LoginIn is the login-or-register request
type LoginIn struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
}

// LoginOut returns the account. Clients send the ID back on every request
type LoginOut struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
