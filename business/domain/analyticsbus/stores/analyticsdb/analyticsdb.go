// Package analyticsdb contains the aggregate queries behind the dashboard
// metrics.
package analyticsdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/business/domain/analyticsbus"
	"github.com/jcpaschoal/admindashboard/business/sdk/sqldb"
	"github.com/jcpaschoal/admindashboard/foundation/logger"
	"github.com/jmoiron/sqlx"
)

// Store manages the set of APIs for analytics database access.
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

// CustomerCount returns the number of customers of the business.
func (s *Store) CustomerCount(ctx context.Context, businessID uuid.UUID) (int, error) {
	const q = `
	SELECT
		COUNT(*) AS count
	FROM
		"Customer"
	WHERE
		"businessId" = :businessId`

	return s.count(ctx, q, businessID)
}

// RevenueTotal returns the sum of every recorded amount of the business.
func (s *Store) RevenueTotal(ctx context.Context, businessID uuid.UUID) (float64, error) {
	data := map[string]any{
		"businessId": businessID,
	}

	const q = `
	SELECT
		COALESCE(SUM(amount), 0) AS total
	FROM
		"Activity"
	WHERE
		"businessId" = :businessId AND amount IS NOT NULL`

	var total totalDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &total); err != nil {
		return 0, fmt.Errorf("namedquerystruct: %w", err)
	}

	return total.Total, nil
}

// ActivityCount returns the number of activities logged in the last month.
func (s *Store) ActivityCount(ctx context.Context, businessID uuid.UUID) (int, error) {
	const q = `
	SELECT
		COUNT(*) AS count
	FROM
		"Activity"
	WHERE
		"businessId" = :businessId AND "createdAt" >= NOW() - INTERVAL '1 month'`

	return s.count(ctx, q, businessID)
}

// TeamCount returns the number of active members of the business.
func (s *Store) TeamCount(ctx context.Context, businessID uuid.UUID) (int, error) {
	const q = `
	SELECT
		COUNT(*) AS count
	FROM
		"User"
	WHERE
		"businessId" = :businessId AND status = 'ACTIVE'`

	return s.count(ctx, q, businessID)
}

// RevenueOverTime returns the revenue per day over the trailing days.
func (s *Store) RevenueOverTime(ctx context.Context, businessID uuid.UUID, days int) ([]analyticsbus.DailyRevenue, error) {
	data := map[string]any{
		"businessId": businessID,
		"days":       days,
	}

	const q = `
	SELECT
		DATE("createdAt") AS date, COALESCE(SUM(amount), 0) AS revenue
	FROM
		"Activity"
	WHERE
		"businessId" = :businessId AND "createdAt" >= NOW() - make_interval(days => :days)
	GROUP BY
		DATE("createdAt")
	ORDER BY
		date ASC`

	var dbs []dailyRevenueDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, data, &dbs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusDailyRevenue(dbs), nil
}

// ActivityByType returns the activity count per type over the trailing days,
// most frequent first.
func (s *Store) ActivityByType(ctx context.Context, businessID uuid.UUID, days int) ([]analyticsbus.TypeCount, error) {
	data := map[string]any{
		"businessId": businessID,
		"days":       days,
	}

	const q = `
	SELECT
		type, COUNT(*) AS count
	FROM
		"Activity"
	WHERE
		"businessId" = :businessId AND "createdAt" >= NOW() - make_interval(days => :days)
	GROUP BY
		type
	ORDER BY
		count DESC`

	var dbs []typeCountDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, data, &dbs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusTypeCounts(dbs), nil
}

func (s *Store) count(ctx context.Context, q string, businessID uuid.UUID) (int, error) {
	data := map[string]any{
		"businessId": businessID,
	}

	var count countDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &count); err != nil {
		return 0, fmt.Errorf("namedquerystruct: %w", err)
	}

	return count.Count, nil
}
