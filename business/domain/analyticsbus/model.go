package analyticsbus

import "time"

// Summary holds the dashboard metrics of a business.
type Summary struct {
	CustomerCount   int
	RevenueTotal    float64
	ActivityCount   int
	TeamCount       int
	RevenueOverTime []DailyRevenue
	ActivityByType  []TypeCount
}

// DailyRevenue is the revenue recorded on one calendar day.
type DailyRevenue struct {
	Date    time.Time
	Revenue float64
}

// TypeCount is the number of activities of one type.
type TypeCount struct {
	Type  string
	Count int
}
