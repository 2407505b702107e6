// Package customerbus provides business access to the customers of a business.
package customerbus

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/foundation/otel"
)

// Set of error variables for customer operations.
var (
	ErrNotFound = errors.New("customer not found")
)

// Storer interface declares the behavior this package needs to persist and
// retrieve data. Every method is scoped to a single business.
type Storer interface {
	Create(ctx context.Context, businessID uuid.UUID, nc NewCustomer) (Customer, error)
	Update(ctx context.Context, businessID uuid.UUID, customerID uuid.UUID, uc UpdateCustomer) error
	Delete(ctx context.Context, businessID uuid.UUID, customerID uuid.UUID) error
	Query(ctx context.Context, businessID uuid.UUID, filter QueryFilter) ([]Customer, error)
	QueryByID(ctx context.Context, businessID uuid.UUID, customerID uuid.UUID) (Customer, error)
}

// Core manages the set of APIs for customer access.
type Core struct {
	storer Storer
}

// NewCore constructs a customer core API for use.
func NewCore(storer Storer) *Core {
	return &Core{
		storer: storer,
	}
}

// Create adds a new customer to the business and returns the stored row.
func (c *Core) Create(ctx context.Context, businessID uuid.UUID, nc NewCustomer) (Customer, error) {
	ctx, span := otel.AddSpan(ctx, "business.customerbus.create")
	defer span.End()

	cst, err := c.storer.Create(ctx, businessID, nc)
	if err != nil {
		return Customer{}, fmt.Errorf("create: %w", err)
	}

	return cst, nil
}

// Update replaces the editable fields of a customer. Updating a customer that
// does not exist in the business is not an error and changes nothing.
func (c *Core) Update(ctx context.Context, businessID uuid.UUID, customerID uuid.UUID, uc UpdateCustomer) (Customer, error) {
	ctx, span := otel.AddSpan(ctx, "business.customerbus.update")
	defer span.End()

	if err := c.storer.Update(ctx, businessID, customerID, uc); err != nil {
		return Customer{}, fmt.Errorf("update: customerID[%s]: %w", customerID, err)
	}

	cst := Customer{
		ID:         customerID,
		BusinessID: businessID,
		Name:       uc.Name,
		Email:      uc.Email,
		Phone:      uc.Phone,
		Notes:      uc.Notes,
	}

	return cst, nil
}

// Delete removes the customer from the business. Deleting a customer that
// does not exist in the business is not an error.
func (c *Core) Delete(ctx context.Context, businessID uuid.UUID, customerID uuid.UUID) error {
	ctx, span := otel.AddSpan(ctx, "business.customerbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, businessID, customerID); err != nil {
		return fmt.Errorf("delete: customerID[%s]: %w", customerID, err)
	}

	return nil
}

// Query retrieves the customers of the business, newest first.
func (c *Core) Query(ctx context.Context, businessID uuid.UUID, filter QueryFilter) ([]Customer, error) {
	ctx, span := otel.AddSpan(ctx, "business.customerbus.query")
	defer span.End()

	csts, err := c.storer.Query(ctx, businessID, filter)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return csts, nil
}

// QueryByID finds the customer by the specified ID within the business.
func (c *Core) QueryByID(ctx context.Context, businessID uuid.UUID, customerID uuid.UUID) (Customer, error) {
	ctx, span := otel.AddSpan(ctx, "business.customerbus.querybyid")
	defer span.End()

	cst, err := c.storer.QueryByID(ctx, businessID, customerID)
	if err != nil {
		return Customer{}, fmt.Errorf("query: customerID[%s]: %w", customerID, err)
	}

	return cst, nil
}
