package activitybus

import (
	"time"

	"github.com/google/uuid"
)

// Activity represents an interaction logged against a customer. Amount is
// nil when no amount was recorded; a recorded zero stays zero.
type Activity struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	CustomerID  uuid.UUID
	UserID      string
	UserEmail   string
	Type        string
	Description *string
	Amount      *float64
	CreatedAt   time.Time
}

// NewActivity contains information needed to log an activity.
type NewActivity struct {
	CustomerID  uuid.UUID
	UserID      string
	Type        string
	Description *string
	Amount      *float64
}
