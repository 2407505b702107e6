// Package businessdb contains business related CRUD functionality.
package businessdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/business/domain/businessbus"
	"github.com/jcpaschoal/admindashboard/business/sdk/sqldb"
	"github.com/jcpaschoal/admindashboard/foundation/logger"
	"github.com/jmoiron/sqlx"
)

// Store manages the set of APIs for business database access.
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

// Provision inserts the business and its owner in a single statement.
func (s *Store) Provision(ctx context.Context, b businessbus.Business, no businessbus.NewOwner) error {
	// A CTE mantém os dois inserts na mesma instrução (autocommit atômico).
	const q = `
	WITH b AS (
		INSERT INTO "Business"
			(id, name, "createdAt")
		VALUES
			(:businessId, :name, :createdAt)
		RETURNING id
	)
	INSERT INTO "User"
		(id, "businessId", email, role, status)
	SELECT
		:userId, b.id, :email, 'OWNER', 'ACTIVE'
	FROM
		b`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBProvision(b, no)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return fmt.Errorf("namedexeccontext: %w", businessbus.ErrAlreadyProvisioned)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// QueryByID gets the specified business from the database.
func (s *Store) QueryByID(ctx context.Context, businessID uuid.UUID) (businessbus.Business, error) {
	data := struct {
		ID uuid.UUID `db:"id"`
	}{
		ID: businessID,
	}

	const q = `
	SELECT
		id, name, "createdAt"
	FROM
		"Business"
	WHERE
		id = :id`

	var dbBiz businessDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbBiz); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return businessbus.Business{}, fmt.Errorf("db: %w", businessbus.ErrNotFound)
		}
		return businessbus.Business{}, fmt.Errorf("db: %w", err)
	}

	return toBusBusiness(dbBiz), nil
}
