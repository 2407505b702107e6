package businessdb_test

import (
	"context"
	"io"
	"net/mail"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jcpaschoal/admindashboard/business/domain/businessbus"
	"github.com/jcpaschoal/admindashboard/business/domain/businessbus/stores/businessdb"
	"github.com/jcpaschoal/admindashboard/foundation/logger"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*businessbus.Core, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	log := logger.New(io.Discard, logger.LevelDebug, "TEST", nil)
	store := businessdb.NewStore(log, sqlx.NewDb(db, "pgx"))

	return businessbus.NewCore(log, store), mock
}

func TestProvision(t *testing.T) {
	core, mock := setup(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "User"`)).
		WithArgs(sqlmock.AnyArg(), "jane@example.com's Business", sqlmock.AnyArg(), "sub-1", "jane@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	b, err := core.Provision(context.Background(), businessbus.NewOwner{
		Subject: "sub-1",
		Email:   mail.Address{Address: "jane@example.com"},
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, "jane@example.com's Business", b.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvisionTwice(t *testing.T) {
	core, mock := setup(t)

	mock.ExpectExec(`INSERT`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "User_pkey"})

	_, err := core.Provision(context.Background(), businessbus.NewOwner{
		Subject: "sub-1",
		Email:   mail.Address{Address: "jane@example.com"},
	})
	assert.ErrorIs(t, err, businessbus.ErrAlreadyProvisioned)
}

func TestQueryByID(t *testing.T) {
	core, mock := setup(t)

	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "createdAt"}).
			AddRow(id.String(), "Acme", time.Now()))

	b, err := core.QueryByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Acme", b.Name)

	mock.ExpectQuery(`SELECT`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "createdAt"}))

	_, err = core.QueryByID(context.Background(), id)
	assert.ErrorIs(t, err, businessbus.ErrNotFound)
}
