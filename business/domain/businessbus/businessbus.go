// Package businessbus provides business access to the tenants of the system.
package businessbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/foundation/logger"
	"github.com/jcpaschoal/admindashboard/foundation/otel"
)

// Set of error variables for business operations.
var (
	ErrNotFound           = errors.New("business not found")
	ErrAlreadyProvisioned = errors.New("user already belongs to a business")
)

// Storer defines the behavior required by the businessbus to interact with the database.
type Storer interface {
	Provision(ctx context.Context, b Business, owner NewOwner) error
	QueryByID(ctx context.Context, businessID uuid.UUID) (Business, error)
}

// Core manages the set of APIs for business access.
type Core struct {
	storer Storer
	log    *logger.Logger
}

// NewCore constructs a core for business api access.
func NewCore(log *logger.Logger, storer Storer) *Core {
	return &Core{
		storer: storer,
		log:    log,
	}
}

// Provision creates the business of a newly confirmed identity together with
// its owner. Both rows are written by one statement, so either both exist
// afterwards or neither does.
func (c *Core) Provision(ctx context.Context, no NewOwner) (Business, error) {
	ctx, span := otel.AddSpan(ctx, "business.businessbus.provision")
	defer span.End()

	b := Business{
		ID:        uuid.New(),
		Name:      fmt.Sprintf("%s's Business", no.Email.Address),
		CreatedAt: time.Now(),
	}

	if err := c.storer.Provision(ctx, b, no); err != nil {
		return Business{}, fmt.Errorf("provision: subject[%s]: %w", no.Subject, err)
	}

	c.log.Info(ctx, "business provisioned", "businessID", b.ID, "owner", no.Subject)

	return b, nil
}

// QueryByID finds the business by the specified ID.
func (c *Core) QueryByID(ctx context.Context, businessID uuid.UUID) (Business, error) {
	ctx, span := otel.AddSpan(ctx, "business.businessbus.querybyid")
	defer span.End()

	b, err := c.storer.QueryByID(ctx, businessID)
	if err != nil {
		return Business{}, fmt.Errorf("query: businessID[%s]: %w", businessID, err)
	}

	return b, nil
}
