package analyticsdb_test

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/business/domain/analyticsbus"
	"github.com/jcpaschoal/admindashboard/business/domain/analyticsbus/stores/analyticsdb"
	"github.com/jcpaschoal/admindashboard/foundation/logger"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*analyticsbus.Core, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	// The six queries run concurrently.
	mock.MatchExpectationsInOrder(false)

	log := logger.New(io.Discard, logger.LevelDebug, "TEST", nil)

	return analyticsbus.NewCore(analyticsdb.NewStore(log, sqlx.NewDb(db, "pgx"))), mock
}

func TestSummary(t *testing.T) {
	core, mock := setup(t)

	bizID := uuid.New()
	day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "Customer" WHERE "businessId" = $1`)).
		WithArgs(bizID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	mock.ExpectQuery(regexp.QuoteMeta(`AS total`)).
		WithArgs(bizID).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("1520.75"))

	mock.ExpectQuery(regexp.QuoteMeta(`INTERVAL '1 month'`)).
		WithArgs(bizID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "User" WHERE "businessId" = $1 AND status = 'ACTIVE'`)).
		WithArgs(bizID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	mock.ExpectQuery(regexp.QuoteMeta(`AS revenue`)).
		WithArgs(bizID, 7).
		WillReturnRows(sqlmock.NewRows([]string{"date", "revenue"}).AddRow(day, "200.5"))

	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY type ORDER BY count DESC`)).
		WithArgs(bizID, 7).
		WillReturnRows(sqlmock.NewRows([]string{"type", "count"}).AddRow("call", 4).AddRow("sale", 2))

	s, err := core.Summary(context.Background(), bizID, 7)
	require.NoError(t, err)

	assert.Equal(t, 12, s.CustomerCount)
	assert.Equal(t, 1520.75, s.RevenueTotal)
	assert.Equal(t, 7, s.ActivityCount)
	assert.Equal(t, 3, s.TeamCount)
	assert.Equal(t, []analyticsbus.DailyRevenue{{Date: day, Revenue: 200.5}}, s.RevenueOverTime)
	assert.Equal(t, []analyticsbus.TypeCount{{Type: "call", Count: 4}, {Type: "sale", Count: 2}}, s.ActivityByType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryEmptyBusiness(t *testing.T) {
	core, mock := setup(t)

	bizID := uuid.New()

	for _, q := range []string{`FROM "Customer"`, `FROM "User"`, `INTERVAL '1 month'`} {
		mock.ExpectQuery(regexp.QuoteMeta(q)).
			WithArgs(bizID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	}

	mock.ExpectQuery(regexp.QuoteMeta(`AS total`)).
		WithArgs(bizID).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("0"))

	mock.ExpectQuery(regexp.QuoteMeta(`AS revenue`)).
		WithArgs(bizID, analyticsbus.DefaultDays).
		WillReturnRows(sqlmock.NewRows([]string{"date", "revenue"}))

	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY type`)).
		WithArgs(bizID, analyticsbus.DefaultDays).
		WillReturnRows(sqlmock.NewRows([]string{"type", "count"}))

	s, err := core.Summary(context.Background(), bizID, analyticsbus.DefaultDays)
	require.NoError(t, err)

	assert.Zero(t, s.CustomerCount)
	assert.Zero(t, s.RevenueTotal)
	assert.NotNil(t, s.RevenueOverTime)
	assert.Empty(t, s.RevenueOverTime)
	assert.NotNil(t, s.ActivityByType)
	assert.Empty(t, s.ActivityByType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryQueryFailure(t *testing.T) {
	core, mock := setup(t)

	bizID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "Customer"`)).
		WithArgs(bizID).
		WillReturnError(errors.New("connection refused"))

	_, err := core.Summary(context.Background(), bizID, analyticsbus.DefaultDays)
	require.Error(t, err)
}
