package meapp_test

import (
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jcpaschoal/admindashboard/app/domain/meapp"
	"github.com/jcpaschoal/admindashboard/app/sdk/apitest"
	"github.com/jcpaschoal/admindashboard/app/sdk/mux"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
	"github.com/jcpaschoal/admindashboard/business/types/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTest(t *testing.T) *apitest.Test {
	return apitest.New(t, apitest.RouteFunc(func(app *web.App, cfg mux.Config) {
		meapp.Routes(app, meapp.Config{
			BusinessBus: cfg.BusConfig.BusinessBus,
		})
	}))
}

func TestMe(t *testing.T) {
	at := newTest(t)
	at.ExpectIdentity("sub-1", role.Manager)

	at.Mock.ExpectQuery(regexp.QuoteMeta(`FROM "Business" WHERE id = $1`)).
		WithArgs(at.BusinessID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "createdAt"}).
			AddRow(at.BusinessID.String(), "jane@example.com's Business", time.Now()))

	resp := at.Do(t, http.MethodGet, "/v1/me", "sub-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got meapp.Me
	resp.Data(t, &got)

	want := meapp.Me{
		UserID:       "sub-1",
		BusinessID:   at.BusinessID.String(),
		BusinessName: "jane@example.com's Business",
		Role:         "MANAGER",
		Status:       "ACTIVE",
	}
	assert.Equal(t, want, got)
	assert.NoError(t, at.Mock.ExpectationsWereMet())
}

func TestMeWithoutPrincipal(t *testing.T) {
	at := newTest(t)

	resp := at.Do(t, http.MethodGet, "/v1/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.NoError(t, at.Mock.ExpectationsWereMet())
}
