package customerdb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/business/domain/customerbus"
	"github.com/jcpaschoal/admindashboard/business/sdk/sqldb"
	"github.com/jcpaschoal/admindashboard/business/types/name"
)

type customerDB struct {
	ID         uuid.UUID      `db:"id"`
	BusinessID uuid.UUID      `db:"businessId"`
	Name       string         `db:"name"`
	Email      sql.NullString `db:"email"`
	Phone      sql.NullString `db:"phone"`
	Notes      sql.NullString `db:"notes"`
	CreatedAt  time.Time      `db:"createdAt"`
}

type writeDB struct {
	ID         uuid.UUID      `db:"id"`
	BusinessID uuid.UUID      `db:"businessId"`
	Name       string         `db:"name"`
	Email      sql.NullString `db:"email"`
	Phone      sql.NullString `db:"phone"`
	Notes      sql.NullString `db:"notes"`
}

func toDBNewCustomer(businessID uuid.UUID, nc customerbus.NewCustomer) writeDB {
	return writeDB{
		BusinessID: businessID,
		Name:       nc.Name.String(),
		Email:      sqldb.ToNullString(nc.Email),
		Phone:      sqldb.ToNullString(nc.Phone),
		Notes:      sqldb.ToNullString(nc.Notes),
	}
}

func toDBUpdateCustomer(businessID uuid.UUID, customerID uuid.UUID, uc customerbus.UpdateCustomer) writeDB {
	return writeDB{
		ID:         customerID,
		BusinessID: businessID,
		Name:       uc.Name.String(),
		Email:      sqldb.ToNullString(uc.Email),
		Phone:      sqldb.ToNullString(uc.Phone),
		Notes:      sqldb.ToNullString(uc.Notes),
	}
}

func toBusCustomer(db customerDB) (customerbus.Customer, error) {
	nme, err := name.Parse(db.Name)
	if err != nil {
		return customerbus.Customer{}, fmt.Errorf("parse name: %w", err)
	}

	bus := customerbus.Customer{
		ID:         db.ID,
		BusinessID: db.BusinessID,
		Name:       nme,
		Email:      sqldb.FromNullString(db.Email),
		Phone:      sqldb.FromNullString(db.Phone),
		Notes:      sqldb.FromNullString(db.Notes),
		CreatedAt:  db.CreatedAt,
	}

	return bus, nil
}

func toBusCustomers(dbs []customerDB) ([]customerbus.Customer, error) {
	bus := make([]customerbus.Customer, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusCustomer(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
