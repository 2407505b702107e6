package userdb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/business/domain/userbus"
	"github.com/jcpaschoal/admindashboard/business/sdk/sqldb"
	"github.com/jcpaschoal/admindashboard/business/types/role"
	"github.com/jcpaschoal/admindashboard/business/types/status"
)

type userDB struct {
	ID           string       `db:"id"`
	BusinessID   uuid.UUID    `db:"businessId"`
	Email        string       `db:"email"`
	Role         string       `db:"role"`
	Status       string       `db:"status"`
	CreatedAt    time.Time    `db:"createdAt"`
	LastActiveAt sql.NullTime `db:"lastActiveAt"`
}

func toBusUser(db userDB) (userbus.User, error) {
	usrRole, err := role.Parse(db.Role)
	if err != nil {
		return userbus.User{}, fmt.Errorf("parse role: %w", err)
	}

	usrStatus, err := status.Parse(db.Status)
	if err != nil {
		return userbus.User{}, fmt.Errorf("parse status: %w", err)
	}

	bus := userbus.User{
		ID:           db.ID,
		BusinessID:   db.BusinessID,
		Email:        db.Email,
		Role:         usrRole,
		Status:       usrStatus,
		CreatedAt:    db.CreatedAt,
		LastActiveAt: sqldb.FromNullTime(db.LastActiveAt),
	}

	return bus, nil
}

func toBusUsers(dbs []userDB) ([]userbus.User, error) {
	bus := make([]userbus.User, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusUser(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
