// Package activitybus provides business access to customer activities.
package activitybus

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/foundation/otel"
)

// Set of error variables for activity operations.
var (
	ErrCustomerNotFound = errors.New("customer not found")
)

// Storer interface declares the behavior this package needs to persist and
// retrieve data. Every method is scoped to a single business.
type Storer interface {
	Create(ctx context.Context, businessID uuid.UUID, na NewActivity) (Activity, error)
	QueryByCustomer(ctx context.Context, businessID uuid.UUID, customerID uuid.UUID) ([]Activity, error)
}

// Core manages the set of APIs for activity access.
type Core struct {
	storer Storer
}

// NewCore constructs an activity core API for use.
func NewCore(storer Storer) *Core {
	return &Core{
		storer: storer,
	}
}

// Create logs an activity against a customer of the business. A customer
// outside the business reports ErrCustomerNotFound and nothing is written.
func (c *Core) Create(ctx context.Context, businessID uuid.UUID, na NewActivity) (Activity, error) {
	ctx, span := otel.AddSpan(ctx, "business.activitybus.create")
	defer span.End()

	act, err := c.storer.Create(ctx, businessID, na)
	if err != nil {
		return Activity{}, fmt.Errorf("create: customerID[%s]: %w", na.CustomerID, err)
	}

	return act, nil
}

// QueryByCustomer retrieves the activities of a customer, newest first.
func (c *Core) QueryByCustomer(ctx context.Context, businessID uuid.UUID, customerID uuid.UUID) ([]Activity, error) {
	ctx, span := otel.AddSpan(ctx, "business.activitybus.querybycustomer")
	defer span.End()

	acts, err := c.storer.QueryByCustomer(ctx, businessID, customerID)
	if err != nil {
		return nil, fmt.Errorf("query: customerID[%s]: %w", customerID, err)
	}

	return acts, nil
}
