package checkapp_test

import (
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jcpaschoal/admindashboard/app/domain/checkapp"
	"github.com/jcpaschoal/admindashboard/app/sdk/apitest"
	"github.com/jcpaschoal/admindashboard/app/sdk/mux"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTest(t *testing.T) *apitest.Test {
	return apitest.New(t, apitest.RouteFunc(func(app *web.App, cfg mux.Config) {
		checkapp.Routes(app, checkapp.Config{
			Build: cfg.Build,
			Log:   cfg.Log,
			DB:    cfg.DB,
		})
	}))
}

func TestLivenessNeedsNoPrincipal(t *testing.T) {
	at := newTest(t)

	resp := at.Do(t, http.MethodGet, "/v1/liveness", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got checkapp.Info
	resp.Data(t, &got)
	assert.Equal(t, "up", got.Status)
	assert.Equal(t, "test", got.Build)
	assert.NoError(t, at.Mock.ExpectationsWereMet())
}

func TestReadiness(t *testing.T) {
	at := newTest(t)

	at.Mock.ExpectQuery(regexp.QuoteMeta(`SELECT TRUE`)).
		WillReturnRows(sqlmock.NewRows([]string{"bool"}).AddRow(true))

	resp := at.Do(t, http.MethodGet, "/v1/readiness", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, resp.Body.Success)
	assert.NoError(t, at.Mock.ExpectationsWereMet())
}

func TestReadinessDatabaseDown(t *testing.T) {
	at := newTest(t)

	at.Mock.ExpectQuery(regexp.QuoteMeta(`SELECT TRUE`)).
		WillReturnError(errors.New("connection refused"))

	resp := at.Do(t, http.MethodGet, "/v1/readiness", "", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "database not ready", resp.Body.Error)
}
