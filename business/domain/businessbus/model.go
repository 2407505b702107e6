package businessbus

import (
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// Business represents a tenant of the system.
type Business struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// NewOwner contains the confirmed identity that opens a new business.
type NewOwner struct {
	Subject string
	Email   mail.Address
}
