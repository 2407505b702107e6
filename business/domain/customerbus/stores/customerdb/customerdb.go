// Package customerdb contains customer related CRUD functionality.
package customerdb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/business/domain/customerbus"
	"github.com/jcpaschoal/admindashboard/business/sdk/sqldb"
	"github.com/jcpaschoal/admindashboard/foundation/logger"
	"github.com/jmoiron/sqlx"
)

// Store manages the set of APIs for customer database access.
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

// Create inserts a new customer and returns the row as stored, including the
// generated id and creation time.
func (s *Store) Create(ctx context.Context, businessID uuid.UUID, nc customerbus.NewCustomer) (customerbus.Customer, error) {
	const q = `
	INSERT INTO "Customer"
		("businessId", name, email, phone, notes)
	VALUES
		(:businessId, :name, :email, :phone, :notes)
	RETURNING
		id, "businessId", name, email, phone, notes, "createdAt"`

	var dbCst customerDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, toDBNewCustomer(businessID, nc), &dbCst); err != nil {
		return customerbus.Customer{}, fmt.Errorf("namedquerystruct: %w", err)
	}

	return toBusCustomer(dbCst)
}

// Update replaces the editable fields of a customer within the business.
func (s *Store) Update(ctx context.Context, businessID uuid.UUID, customerID uuid.UUID, uc customerbus.UpdateCustomer) error {
	const q = `
	UPDATE
		"Customer"
	SET
		name = :name,
		email = :email,
		phone = :phone,
		notes = :notes
	WHERE
		id = :id AND "businessId" = :businessId`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBUpdateCustomer(businessID, customerID, uc)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes a customer from the business.
func (s *Store) Delete(ctx context.Context, businessID uuid.UUID, customerID uuid.UUID) error {
	data := map[string]any{
		"id":         customerID,
		"businessId": businessID,
	}

	const q = `
	DELETE FROM
		"Customer"
	WHERE
		id = :id AND "businessId" = :businessId`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, data); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves the customers of the business from the database.
func (s *Store) Query(ctx context.Context, businessID uuid.UUID, filter customerbus.QueryFilter) ([]customerbus.Customer, error) {
	data := map[string]any{
		"businessId": businessID,
	}

	const q = `
	SELECT
		id, "businessId", name, email, phone, notes, "createdAt"
	FROM
		"Customer"
	WHERE
		"businessId" = :businessId`

	buf := bytes.NewBufferString(q)
	applyFilter(filter, data, buf)
	buf.WriteString(` ORDER BY "createdAt" DESC`)

	var dbCsts []customerDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbCsts); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusCustomers(dbCsts)
}

// QueryByID gets the specified customer of the business from the database.
func (s *Store) QueryByID(ctx context.Context, businessID uuid.UUID, customerID uuid.UUID) (customerbus.Customer, error) {
	data := map[string]any{
		"id":         customerID,
		"businessId": businessID,
	}

	const q = `
	SELECT
		id, "businessId", name, email, phone, notes, "createdAt"
	FROM
		"Customer"
	WHERE
		id = :id AND "businessId" = :businessId`

	var dbCst customerDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbCst); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return customerbus.Customer{}, fmt.Errorf("db: %w", customerbus.ErrNotFound)
		}
		return customerbus.Customer{}, fmt.Errorf("db: %w", err)
	}

	return toBusCustomer(dbCst)
}
