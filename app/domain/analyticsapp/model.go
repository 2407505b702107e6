package analyticsapp

import (
	"encoding/json"

	"github.com/jcpaschoal/admindashboard/business/domain/analyticsbus"
)

// Metrics holds the headline numbers of the dashboard.
type Metrics struct {
	CustomerCount int     `json:"customerCount"`
	RevenueTotal  float64 `json:"revenueTotal"`
	ActivityCount int     `json:"activityCount"`
	TeamCount     int     `json:"teamCount"`
}

// DailyRevenue is one point of the revenue series.
type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// TypeCount is one bar of the activity histogram.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Analytics represents the dashboard of a business.
type Analytics struct {
	Metrics         Metrics        `json:"metrics"`
	RevenueOverTime []DailyRevenue `json:"revenueOverTime"`
	ActivityByType  []TypeCount    `json:"activityByType"`
}

// Encode implements the web.Encoder interface.
func (a Analytics) Encode() ([]byte, string, error) {
	data, err := json.Marshal(a)
	return data, "application/json", err
}

func toAppAnalytics(bus analyticsbus.Summary) Analytics {
	rot := make([]DailyRevenue, len(bus.RevenueOverTime))
	for i, dr := range bus.RevenueOverTime {
		rot[i] = DailyRevenue{
			Date:    dr.Date.Format("2006-01-02"),
			Revenue: dr.Revenue,
		}
	}

	abt := make([]TypeCount, len(bus.ActivityByType))
	for i, tc := range bus.ActivityByType {
		abt[i] = TypeCount{
			Type:  tc.Type,
			Count: tc.Count,
		}
	}

	return Analytics{
		Metrics: Metrics{
			CustomerCount: bus.CustomerCount,
			RevenueTotal:  bus.RevenueTotal,
			ActivityCount: bus.ActivityCount,
			TeamCount:     bus.TeamCount,
		},
		RevenueOverTime: rot,
		ActivityByType:  abt,
	}
}
