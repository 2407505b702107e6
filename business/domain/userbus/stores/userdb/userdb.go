// Package userdb contains user related CRUD functionality.
package userdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/business/domain/userbus"
	"github.com/jcpaschoal/admindashboard/business/sdk/sqldb"
	"github.com/jcpaschoal/admindashboard/business/types/role"
	"github.com/jcpaschoal/admindashboard/business/types/status"
	"github.com/jcpaschoal/admindashboard/foundation/logger"
	"github.com/jmoiron/sqlx"
)

// Store manages the set of APIs for user database access.
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

// QueryActiveByID gets the active user with the specified subject.
func (s *Store) QueryActiveByID(ctx context.Context, userID string) (userbus.User, error) {
	data := struct {
		ID string `db:"id"`
	}{
		ID: userID,
	}

	const q = `
	SELECT
		id, "businessId", email, role, status, "createdAt", "lastActiveAt"
	FROM
		"User"
	WHERE
		id = :id AND status = 'ACTIVE'`

	var dbUsr userDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbUsr); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return userbus.User{}, fmt.Errorf("db: %w", userbus.ErrNotFoundOrInactive)
		}
		return userbus.User{}, fmt.Errorf("db: %w", err)
	}

	return toBusUser(dbUsr)
}

// QueryByBusiness retrieves the members of a business ordered by creation.
func (s *Store) QueryByBusiness(ctx context.Context, businessID uuid.UUID) ([]userbus.User, error) {
	data := map[string]any{
		"businessId": businessID,
	}

	const q = `
	SELECT
		id, "businessId", email, role, status, "createdAt", "lastActiveAt"
	FROM
		"User"
	WHERE
		"businessId" = :businessId
	ORDER BY
		"createdAt" ASC`

	var dbUsrs []userDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, data, &dbUsrs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusUsers(dbUsrs)
}

// UpdateRole sets the role of a member, scoped to the business.
func (s *Store) UpdateRole(ctx context.Context, businessID uuid.UUID, userID string, r role.Role) error {
	data := map[string]any{
		"role":       r.String(),
		"id":         userID,
		"businessId": businessID,
	}

	const q = `
	UPDATE
		"User"
	SET
		role = :role
	WHERE
		id = :id AND "businessId" = :businessId`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, data); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// UpdateStatus sets the status of a member, scoped to the business.
func (s *Store) UpdateStatus(ctx context.Context, businessID uuid.UUID, userID string, st status.Status) error {
	data := map[string]any{
		"status":     st.String(),
		"id":         userID,
		"businessId": businessID,
	}

	const q = `
	UPDATE
		"User"
	SET
		status = :status
	WHERE
		id = :id AND "businessId" = :businessId`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, data); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}
