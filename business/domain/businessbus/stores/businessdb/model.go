package businessdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/business/domain/businessbus"
)

type businessDB struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"createdAt"`
}

type provisionDB struct {
	BusinessID uuid.UUID `db:"businessId"`
	Name       string    `db:"name"`
	CreatedAt  time.Time `db:"createdAt"`
	UserID     string    `db:"userId"`
	Email      string    `db:"email"`
}

func toDBProvision(b businessbus.Business, no businessbus.NewOwner) provisionDB {
	return provisionDB{
		BusinessID: b.ID,
		Name:       b.Name,
		CreatedAt:  b.CreatedAt.UTC(),
		UserID:     no.Subject,
		Email:      no.Email.Address,
	}
}

func toBusBusiness(db businessDB) businessbus.Business {
	return businessbus.Business{
		ID:        db.ID,
		Name:      db.Name,
		CreatedAt: db.CreatedAt,
	}
}
