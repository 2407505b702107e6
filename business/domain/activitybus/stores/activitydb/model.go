package activitydb

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/business/domain/activitybus"
	"github.com/jcpaschoal/admindashboard/business/sdk/sqldb"
)

type activityDB struct {
	ID          uuid.UUID       `db:"id"`
	BusinessID  uuid.UUID       `db:"businessId"`
	CustomerID  uuid.UUID       `db:"customerId"`
	UserID      string          `db:"userId"`
	UserEmail   string          `db:"userEmail"`
	Type        string          `db:"type"`
	Description sql.NullString  `db:"description"`
	Amount      sql.NullFloat64 `db:"amount"`
	CreatedAt   time.Time       `db:"createdAt"`
}

type newActivityDB struct {
	BusinessID  uuid.UUID       `db:"businessId"`
	CustomerID  uuid.UUID       `db:"customerId"`
	UserID      string          `db:"userId"`
	Type        string          `db:"type"`
	Description sql.NullString  `db:"description"`
	Amount      sql.NullFloat64 `db:"amount"`
}

func toDBNewActivity(businessID uuid.UUID, na activitybus.NewActivity) newActivityDB {
	return newActivityDB{
		BusinessID:  businessID,
		CustomerID:  na.CustomerID,
		UserID:      na.UserID,
		Type:        na.Type,
		Description: sqldb.ToNullString(na.Description),
		Amount:      sqldb.ToNullFloat64(na.Amount),
	}
}

func toBusActivity(db activityDB) activitybus.Activity {
	return activitybus.Activity{
		ID:          db.ID,
		BusinessID:  db.BusinessID,
		CustomerID:  db.CustomerID,
		UserID:      db.UserID,
		UserEmail:   db.UserEmail,
		Type:        db.Type,
		Description: sqldb.FromNullString(db.Description),
		Amount:      sqldb.FromNullFloat64(db.Amount),
		CreatedAt:   db.CreatedAt,
	}
}

func toBusActivities(dbs []activityDB) []activitybus.Activity {
	bus := make([]activitybus.Activity, len(dbs))
	for i, db := range dbs {
		bus[i] = toBusActivity(db)
	}

	return bus
}
