// Package invitedb contains invitation related CRUD functionality.
package invitedb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/business/domain/invitebus"
	"github.com/jcpaschoal/admindashboard/business/sdk/sqldb"
	"github.com/jcpaschoal/admindashboard/foundation/logger"
	"github.com/jmoiron/sqlx"
)

type invitationDB struct {
	BusinessID uuid.UUID `db:"businessId"`
	Email      string    `db:"email"`
	Role       string    `db:"role"`
	InvitedBy  string    `db:"invitedBy"`
}

// Store manages the set of APIs for invitation database access.
type Store struct {
	log *logger.Logger
	db  sqlx.ExtContext
}

// NewStore constructs the api for data access.
func NewStore(log *logger.Logger, db *sqlx.DB) *Store {
	return &Store{
		log: log,
		db:  db,
	}
}

// Create inserts a new invitation into the database.
func (s *Store) Create(ctx context.Context, businessID uuid.UUID, ni invitebus.NewInvitation) error {
	const q = `
	INSERT INTO "Invitation"
		("businessId", email, role, "invitedBy")
	VALUES
		(:businessId, :email, :role, :invitedBy)`

	data := invitationDB{
		BusinessID: businessID,
		Email:      ni.Email.Address,
		Role:       ni.Role.String(),
		InvitedBy:  ni.InvitedBy,
	}

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, data); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return fmt.Errorf("namedexeccontext: %w", invitebus.ErrAlreadyInvited)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}
