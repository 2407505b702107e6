// Package invitebus provides business access to team invitations.
package invitebus

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/foundation/otel"
)

// Set of error variables for invitation operations.
var (
	ErrAlreadyInvited = errors.New("email already invited")
)

// Storer interface declares the behavior this package needs to persist data.
type Storer interface {
	Create(ctx context.Context, businessID uuid.UUID, ni NewInvitation) error
}

// Core manages the set of APIs for invitation access.
type Core struct {
	storer Storer
}

// NewCore constructs an invitation core API for use.
func NewCore(storer Storer) *Core {
	return &Core{
		storer: storer,
	}
}

// Create records a pending invitation to the business. Delivering the
// invitation to the invitee is not part of this call.
func (c *Core) Create(ctx context.Context, businessID uuid.UUID, ni NewInvitation) (Invitation, error) {
	ctx, span := otel.AddSpan(ctx, "business.invitebus.create")
	defer span.End()

	if err := c.storer.Create(ctx, businessID, ni); err != nil {
		return Invitation{}, fmt.Errorf("create: email[%s]: %w", ni.Email.Address, err)
	}

	inv := Invitation{
		Email:     ni.Email,
		Role:      ni.Role,
		InvitedBy: ni.InvitedBy,
		Status:    StatusPending,
	}

	return inv, nil
}
