package sqldb_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jcpaschoal/admindashboard/business/sdk/sqldb"
	"github.com/jcpaschoal/admindashboard/foundation/logger"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customerRow struct {
	ID    string         `db:"id"`
	Name  string         `db:"name"`
	Email sql.NullString `db:"email"`
}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, *logger.Logger) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	log := logger.New(io.Discard, logger.LevelDebug, "TEST", nil)

	return sqlx.NewDb(db, "pgx"), mock, log
}

func TestNamedQuerySlice(t *testing.T) {
	db, mock, log := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow("c-1", "Jane Smith", "jane@example.com").
		AddRow("c-2", "John Doe", nil)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE "businessId" = $1`)).
		WithArgs("b-1").
		WillReturnRows(rows)

	const q = `SELECT id, name, email FROM "Customer" WHERE "businessId" = :businessId`
	data := map[string]any{"businessId": "b-1"}

	var got []customerRow
	err := sqldb.NamedQuerySlice(context.Background(), log, db, q, data, &got)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Jane Smith", got[0].Name)
	assert.Equal(t, "jane@example.com", *sqldb.FromNullString(got[0].Email))
	assert.Nil(t, sqldb.FromNullString(got[1].Email))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNamedQuerySliceEmptyIsNotNil(t *testing.T) {
	db, mock, log := setupMockDB(t)

	mock.ExpectQuery(`SELECT`).
		WithArgs("b-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

	const q = `SELECT id, name, email FROM "Customer" WHERE "businessId" = :businessId`

	var got []customerRow
	err := sqldb.NamedQuerySlice(context.Background(), log, db, q, map[string]any{"businessId": "b-1"}, &got)
	require.NoError(t, err)

	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNamedQuerySliceRejectsUnknownColumn(t *testing.T) {
	db, mock, log := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone"}).
		AddRow("c-1", "Jane Smith", nil, nil)

	mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

	const q = `SELECT id, name, email, phone FROM "Customer"`

	var got []customerRow
	err := sqldb.NamedQuerySlice(context.Background(), log, db, q, map[string]any{}, &got)
	assert.Error(t, err)
}

func TestNamedQueryStructNotFound(t *testing.T) {
	db, mock, log := setupMockDB(t)

	mock.ExpectQuery(`SELECT`).
		WithArgs("c-9", "b-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

	const q = `SELECT id, name, email FROM "Customer" WHERE id = :id AND "businessId" = :businessId`

	var got customerRow
	err := sqldb.NamedQueryStruct(context.Background(), log, db, q, map[string]any{"id": "c-9", "businessId": "b-1"}, &got)
	assert.True(t, errors.Is(err, sqldb.ErrDBNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNamedQueryStructUnboundParameter(t *testing.T) {
	db, _, log := setupMockDB(t)

	const q = `SELECT id FROM "Customer" WHERE "businessId" = :businessId`

	var got customerRow
	err := sqldb.NamedQueryStruct(context.Background(), log, db, q, map[string]any{}, &got)
	assert.Error(t, err)
}

func TestNamedExecContext(t *testing.T) {
	db, mock, log := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "Customer" WHERE id = $1 AND "businessId" = $2`)).
		WithArgs("c-1", "b-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	const q = `DELETE FROM "Customer" WHERE id = :id AND "businessId" = :businessId`

	err := sqldb.NamedExecContext(context.Background(), log, db, q, map[string]any{"id": "c-1", "businessId": "b-1"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNamedExecContextDuplicate(t *testing.T) {
	db, mock, log := setupMockDB(t)

	mock.ExpectExec(`INSERT`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "Invitation_businessId_email_key"})

	const q = `INSERT INTO "Invitation" (email) VALUES (:email)`

	err := sqldb.NamedExecContext(context.Background(), log, db, q, map[string]any{"email": "a@b.com"})

	var dupErr sqldb.ErrDBDuplicatedEntry
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "Invitation_businessId_email_key", dupErr.Column)
}

func TestNullHelpers(t *testing.T) {
	s := "note"
	assert.Equal(t, sql.NullString{String: "note", Valid: true}, sqldb.ToNullString(&s))
	assert.Equal(t, sql.NullString{}, sqldb.ToNullString(nil))

	f := 0.0
	assert.Equal(t, sql.NullFloat64{Float64: 0, Valid: true}, sqldb.ToNullFloat64(&f))
	assert.Nil(t, sqldb.FromNullFloat64(sql.NullFloat64{}))

	amount := sqldb.FromNullFloat64(sql.NullFloat64{Float64: 12.5, Valid: true})
	require.NotNil(t, amount)
	assert.Equal(t, 12.5, *amount)

	now := time.Now()
	assert.Nil(t, sqldb.FromNullTime(sql.NullTime{}))
	assert.Equal(t, now, *sqldb.FromNullTime(sql.NullTime{Time: now, Valid: true}))
}
