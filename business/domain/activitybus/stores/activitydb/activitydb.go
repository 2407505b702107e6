// Package activitydb contains activity related CRUD functionality.
package activitydb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/business/domain/activitybus"
	"github.com/jcpaschoal/admindashboard/business/sdk/sqldb"
	"github.com/jcpaschoal/admindashboard/foundation/logger"
	"github.com/jmoiron/sqlx"
)

// Store manages the set of APIs for activity database access.
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

// Create inserts the activity only when the customer belongs to the
// business, and returns the stored row with the author's email.
func (s *Store) Create(ctx context.Context, businessID uuid.UUID, na activitybus.NewActivity) (activitybus.Activity, error) {
	// O SELECT em "Customer" garante que o cliente é do mesmo business;
	// sem linha, nada é inserido.
	const q = `
	WITH a AS (
		INSERT INTO "Activity"
			("businessId", "customerId", "userId", type, description, amount)
		SELECT
			c."businessId", c.id, :userId, :type, :description, :amount
		FROM
			"Customer" AS c
		WHERE
			c.id = :customerId AND c."businessId" = :businessId
		RETURNING
			id, "businessId", "customerId", "userId", type, description, amount, "createdAt"
	)
	SELECT
		a.id, a."businessId", a."customerId", a."userId", u.email AS "userEmail",
		a.type, a.description, a.amount, a."createdAt"
	FROM
		a
	JOIN
		"User" AS u ON u.id = a."userId"`

	var dbAct activityDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, toDBNewActivity(businessID, na), &dbAct); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return activitybus.Activity{}, fmt.Errorf("db: %w", activitybus.ErrCustomerNotFound)
		}
		return activitybus.Activity{}, fmt.Errorf("db: %w", err)
	}

	return toBusActivity(dbAct), nil
}

// QueryByCustomer gets the activities of a customer of the business.
func (s *Store) QueryByCustomer(ctx context.Context, businessID uuid.UUID, customerID uuid.UUID) ([]activitybus.Activity, error) {
	data := map[string]any{
		"customerId": customerID,
		"businessId": businessID,
	}

	const q = `
	SELECT
		a.id, a."businessId", a."customerId", a."userId", u.email AS "userEmail",
		a.type, a.description, a.amount, a."createdAt"
	FROM
		"Activity" AS a
	JOIN
		"User" AS u ON u.id = a."userId"
	WHERE
		a."customerId" = :customerId AND a."businessId" = :businessId
	ORDER BY
		a."createdAt" DESC`

	var dbActs []activityDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, data, &dbActs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusActivities(dbActs), nil
}
