package mux_test

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/jcpaschoal/admindashboard/app/sdk/apitest"
	"github.com/jcpaschoal/admindashboard/app/sdk/mid"
	"github.com/jcpaschoal/admindashboard/app/sdk/mux"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
	"github.com/jcpaschoal/admindashboard/business/types/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type whoami struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

func (w whoami) Encode() ([]byte, string, error) {
	return []byte(`{"userId":"` + w.UserID + `","role":"` + w.Role + `"}`), "application/json", nil
}

func routes(app *web.App, cfg mux.Config) {
	app.HandlerFunc(http.MethodGet, "v1", "/whoami", func(ctx context.Context, r *http.Request) web.Encoder {
		uc, err := mid.GetUserContext(ctx)
		if err != nil {
			return nil
		}
		return whoami{UserID: uc.UserID, Role: uc.Role.String()}
	})

	app.HandlerFunc(http.MethodGet, "v1", "/boom", func(ctx context.Context, r *http.Request) web.Encoder {
		panic("kaboom")
	})

	app.HandlerFunc(http.MethodGet, "v1", "/fail", func(ctx context.Context, r *http.Request) web.Encoder {
		return failure{errors.New("pq: connection refused")}
	})
}

type failure struct{ error }

func (f failure) Encode() ([]byte, string, error) { return nil, "", nil }

func TestNoPrincipalNeverReachesTheDatabase(t *testing.T) {
	at := apitest.New(t, apitest.RouteFunc(routes))

	for _, path := range []string{"/v1/whoami", "/v1/nothing-here", "/"} {
		resp := at.Do(t, http.MethodGet, path, "", nil)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		assert.False(t, resp.Body.Success)
		assert.Equal(t, "Unauthorized", resp.Body.Error)
		assert.Equal(t, "application/json", resp.ContentType)
	}

	assert.NoError(t, at.Mock.ExpectationsWereMet())
}

func TestIdentityResolvedPerRequest(t *testing.T) {
	at := apitest.New(t, apitest.RouteFunc(routes))

	at.ExpectIdentity("sub-1", role.Staff)

	resp := at.Do(t, http.MethodGet, "/v1/whoami", "sub-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got whoami
	resp.Data(t, &got)
	assert.Equal(t, whoami{UserID: "sub-1", Role: "STAFF"}, got)

	// Deactivation is seen by the very next request.
	at.ExpectNoIdentity("sub-1")

	resp = at.Do(t, http.MethodGet, "/v1/whoami", "sub-1", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "user not found or inactive", resp.Body.Error)

	assert.NoError(t, at.Mock.ExpectationsWereMet())
}

func TestIdentityBackendFault(t *testing.T) {
	at := apitest.New(t, apitest.RouteFunc(routes))

	at.Mock.ExpectQuery(regexp.QuoteMeta(`status = 'ACTIVE'`)).
		WithArgs("sub-1").
		WillReturnError(errors.New("connection reset by peer"))

	resp := at.Do(t, http.MethodGet, "/v1/whoami", "sub-1", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal server error", resp.Body.Error)
	assert.NotContains(t, resp.Body.Error, "connection")
}

func TestUnmatchedRouteIsNotFound(t *testing.T) {
	at := apitest.New(t, apitest.RouteFunc(routes))

	at.ExpectIdentity("sub-1", role.Owner)
	resp := at.Do(t, http.MethodGet, "/v1/nothing-here", "sub-1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not found", resp.Body.Error)

	at.ExpectIdentity("sub-1", role.Owner)
	resp = at.Do(t, http.MethodDelete, "/v1/whoami", "sub-1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPanicIsGenericInternalError(t *testing.T) {
	at := apitest.New(t, apitest.RouteFunc(routes))

	at.ExpectIdentity("sub-1", role.Owner)
	resp := at.Do(t, http.MethodGet, "/v1/boom", "sub-1", nil)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal server error", resp.Body.Error)
	assert.NotContains(t, resp.Body.Error, "kaboom")
}

func TestUnclassifiedErrorHidesCause(t *testing.T) {
	at := apitest.New(t, apitest.RouteFunc(routes))

	at.ExpectIdentity("sub-1", role.Owner)
	resp := at.Do(t, http.MethodGet, "/v1/fail", "sub-1", nil)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal server error", resp.Body.Error)
}
