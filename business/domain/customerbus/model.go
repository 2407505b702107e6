package customerbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/business/types/name"
)

// Customer represents a customer of a business. Optional fields are nil when
// the stored value is NULL.
type Customer struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       name.Name
	Email      *string
	Phone      *string
	Notes      *string
	CreatedAt  time.Time
}

// NewCustomer contains information needed to create a new customer.
type NewCustomer struct {
	Name  name.Name
	Email *string
	Phone *string
	Notes *string
}

// UpdateCustomer contains the full replacement of a customer's editable
// fields. A nil optional field clears the stored value.
type UpdateCustomer struct {
	Name  name.Name
	Email *string
	Phone *string
	Notes *string
}

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	Search *string
}
