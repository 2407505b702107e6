package userbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/business/types/role"
	"github.com/jcpaschoal/admindashboard/business/types/status"
)

// User represents a member of a business. ID is the subject issued by the
// identity provider; BusinessID is set once when the user is created.
type User struct {
	ID           string
	BusinessID   uuid.UUID
	Email        string
	Role         role.Role
	Status       status.Status
	CreatedAt    time.Time
	LastActiveAt *time.Time
}
