package analyticsdb

import (
	"time"

	"github.com/jcpaschoal/admindashboard/business/domain/analyticsbus"
)

type countDB struct {
	Count int `db:"count"`
}

type totalDB struct {
	Total float64 `db:"total"`
}

type dailyRevenueDB struct {
	Date    time.Time `db:"date"`
	Revenue float64   `db:"revenue"`
}

type typeCountDB struct {
	Type  string `db:"type"`
	Count int    `db:"count"`
}

func toBusDailyRevenue(dbs []dailyRevenueDB) []analyticsbus.DailyRevenue {
	bus := make([]analyticsbus.DailyRevenue, len(dbs))
	for i, db := range dbs {
		bus[i] = analyticsbus.DailyRevenue{
			Date:    db.Date,
			Revenue: db.Revenue,
		}
	}

	return bus
}

func toBusTypeCounts(dbs []typeCountDB) []analyticsbus.TypeCount {
	bus := make([]analyticsbus.TypeCount, len(dbs))
	for i, db := range dbs {
		bus[i] = analyticsbus.TypeCount{
			Type:  db.Type,
			Count: db.Count,
		}
	}

	return bus
}
