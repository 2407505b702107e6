package analyticsapp_test

import (
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jcpaschoal/admindashboard/app/domain/analyticsapp"
	"github.com/jcpaschoal/admindashboard/app/sdk/apitest"
	"github.com/jcpaschoal/admindashboard/app/sdk/mux"
	"github.com/jcpaschoal/admindashboard/business/domain/analyticsbus"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
	"github.com/jcpaschoal/admindashboard/business/types/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTest(t *testing.T) *apitest.Test {
	at := apitest.New(t, apitest.RouteFunc(func(app *web.App, cfg mux.Config) {
		analyticsapp.Routes(app, analyticsapp.Config{
			AnalyticsBus: cfg.BusConfig.AnalyticsBus,
		})
	}))

	at.Mock.MatchExpectationsInOrder(false)

	return at
}

type summary struct {
	customers, team, activities int
	total                       string
	days                        int
	revenue                     *sqlmock.Rows
	byType                      *sqlmock.Rows
}

func expectSummary(at *apitest.Test, s summary) {
	at.Mock.ExpectQuery(regexp.QuoteMeta(`FROM "Customer" WHERE "businessId" = $1`)).
		WithArgs(at.BusinessID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(s.customers))

	at.Mock.ExpectQuery(regexp.QuoteMeta(`AS total`)).
		WithArgs(at.BusinessID).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(s.total))

	at.Mock.ExpectQuery(regexp.QuoteMeta(`INTERVAL '1 month'`)).
		WithArgs(at.BusinessID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(s.activities))

	at.Mock.ExpectQuery(regexp.QuoteMeta(`FROM "User" WHERE "businessId" = $1 AND status = 'ACTIVE'`)).
		WithArgs(at.BusinessID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(s.team))

	at.Mock.ExpectQuery(regexp.QuoteMeta(`AS revenue`)).
		WithArgs(at.BusinessID, s.days).
		WillReturnRows(s.revenue)

	at.Mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY type`)).
		WithArgs(at.BusinessID, s.days).
		WillReturnRows(s.byType)
}

func TestEmptyBusinessIsZerosAndEmptyLists(t *testing.T) {
	at := newTest(t)
	at.ExpectIdentity("sub-1", role.Staff)

	expectSummary(at, summary{
		total:   "0",
		days:    analyticsbus.DefaultDays,
		revenue: sqlmock.NewRows([]string{"date", "revenue"}),
		byType:  sqlmock.NewRows([]string{"type", "count"}),
	})

	resp := at.Do(t, http.MethodGet, "/v1/analytics", "sub-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	want := `{
		"metrics": {"customerCount": 0, "revenueTotal": 0, "activityCount": 0, "teamCount": 0},
		"revenueOverTime": [],
		"activityByType": []
	}`
	assert.JSONEq(t, want, string(resp.Body.Data))
	assert.NoError(t, at.Mock.ExpectationsWereMet())
}

func TestSummaryWithDays(t *testing.T) {
	at := newTest(t)
	at.ExpectIdentity("sub-1", role.Staff)

	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	expectSummary(at, summary{
		customers:  12,
		team:       3,
		activities: 7,
		total:      "1520.75",
		days:       7,
		revenue:    sqlmock.NewRows([]string{"date", "revenue"}).AddRow(day, "200.5"),
		byType:     sqlmock.NewRows([]string{"type", "count"}).AddRow("call", 4).AddRow("sale", 2),
	})

	resp := at.Do(t, http.MethodGet, "/v1/analytics?days=7", "sub-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got analyticsapp.Analytics
	resp.Data(t, &got)

	want := analyticsapp.Analytics{
		Metrics: analyticsapp.Metrics{
			CustomerCount: 12,
			RevenueTotal:  1520.75,
			ActivityCount: 7,
			TeamCount:     3,
		},
		RevenueOverTime: []analyticsapp.DailyRevenue{{Date: "2025-03-01", Revenue: 200.5}},
		ActivityByType:  []analyticsapp.TypeCount{{Type: "call", Count: 4}, {Type: "sale", Count: 2}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected analytics (-want +got):\n%s", diff)
	}

	assert.NoError(t, at.Mock.ExpectationsWereMet())
}

func TestInvalidDays(t *testing.T) {
	for _, days := range []string{"0", "-5", "abc", "3651", "1.5"} {
		at := newTest(t)
		at.ExpectIdentity("sub-1", role.Staff)

		resp := at.Do(t, http.MethodGet, "/v1/analytics?days="+days, "sub-1", nil)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, days)
		assert.Equal(t, "days must be between 1 and 3650", resp.Body.Error, days)
		assert.NoError(t, at.Mock.ExpectationsWereMet())
	}
}
