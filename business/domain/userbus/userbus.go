// Package userbus provides business access to the users of a business,
// including the identity lookup every request starts with.
package userbus

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/business/types/role"
	"github.com/jcpaschoal/admindashboard/business/types/status"
	"github.com/jcpaschoal/admindashboard/foundation/otel"
)

// Set of error variables for user operations.
var (
	ErrNotFound           = errors.New("user not found")
	ErrNotFoundOrInactive = errors.New("user not found or inactive")
)

// Storer interface declares the behavior this package needs to persist and
// retrieve data.
type Storer interface {
	QueryActiveByID(ctx context.Context, userID string) (User, error)
	QueryByBusiness(ctx context.Context, businessID uuid.UUID) ([]User, error)
	UpdateRole(ctx context.Context, businessID uuid.UUID, userID string, r role.Role) error
	UpdateStatus(ctx context.Context, businessID uuid.UUID, userID string, s status.Status) error
}

// Core manages the set of APIs for user access.
type Core struct {
	storer Storer
}

// NewCore constructs a user core API for use.
func NewCore(storer Storer) *Core {
	return &Core{
		storer: storer,
	}
}

// QueryActiveByID finds the active user with the specified subject. Unknown
// and deactivated users both report ErrNotFoundOrInactive. The result is
// never cached so a deactivation applies to the next request.
func (c *Core) QueryActiveByID(ctx context.Context, userID string) (User, error) {
	ctx, span := otel.AddSpan(ctx, "business.userbus.queryactivebyid")
	defer span.End()

	usr, err := c.storer.QueryActiveByID(ctx, userID)
	if err != nil {
		return User{}, fmt.Errorf("query: userID[%s]: %w", userID, err)
	}

	return usr, nil
}

// QueryByBusiness retrieves the members of a business, oldest first.
func (c *Core) QueryByBusiness(ctx context.Context, businessID uuid.UUID) ([]User, error) {
	ctx, span := otel.AddSpan(ctx, "business.userbus.querybybusiness")
	defer span.End()

	usrs, err := c.storer.QueryByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return usrs, nil
}

// UpdateRole changes the role of a member of the business. A member of a
// different business is left untouched and no error is reported.
func (c *Core) UpdateRole(ctx context.Context, businessID uuid.UUID, userID string, r role.Role) error {
	ctx, span := otel.AddSpan(ctx, "business.userbus.updaterole")
	defer span.End()

	if err := c.storer.UpdateRole(ctx, businessID, userID, r); err != nil {
		return fmt.Errorf("updaterole: userID[%s]: %w", userID, err)
	}

	return nil
}

// UpdateStatus activates or deactivates a member of the business.
func (c *Core) UpdateStatus(ctx context.Context, businessID uuid.UUID, userID string, s status.Status) error {
	ctx, span := otel.AddSpan(ctx, "business.userbus.updatestatus")
	defer span.End()

	if err := c.storer.UpdateStatus(ctx, businessID, userID, s); err != nil {
		return fmt.Errorf("updatestatus: userID[%s]: %w", userID, err)
	}

	return nil
}
