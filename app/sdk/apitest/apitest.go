// Package apitest provides support for driving the web api end to end in
// tests, with the database replaced by sqlmock.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/app/sdk/auth"
	"github.com/jcpaschoal/admindashboard/app/sdk/mux"
	"github.com/jcpaschoal/admindashboard/business/domain/activitybus"
	"github.com/jcpaschoal/admindashboard/business/domain/activitybus/stores/activitydb"
	"github.com/jcpaschoal/admindashboard/business/domain/analyticsbus"
	"github.com/jcpaschoal/admindashboard/business/domain/analyticsbus/stores/analyticsdb"
	"github.com/jcpaschoal/admindashboard/business/domain/businessbus"
	"github.com/jcpaschoal/admindashboard/business/domain/businessbus/stores/businessdb"
	"github.com/jcpaschoal/admindashboard/business/domain/customerbus"
	"github.com/jcpaschoal/admindashboard/business/domain/customerbus/stores/customerdb"
	"github.com/jcpaschoal/admindashboard/business/domain/invitebus"
	"github.com/jcpaschoal/admindashboard/business/domain/invitebus/stores/invitedb"
	"github.com/jcpaschoal/admindashboard/business/domain/userbus"
	"github.com/jcpaschoal/admindashboard/business/domain/userbus/stores/userdb"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
	"github.com/jcpaschoal/admindashboard/business/types/role"
	"github.com/jcpaschoal/admindashboard/foundation/logger"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

// PrincipalHeader is the header the test api reads the principal from.
const PrincipalHeader = "X-Principal-Id"

// UserColumns are the columns of a user row.
var UserColumns = []string{"id", "businessId", "email", "role", "status", "createdAt", "lastActiveAt"}

// RouteFunc adapts a function to the mux.RouteAdder interface.
type RouteFunc func(app *web.App, cfg mux.Config)

// Add implements the mux.RouteAdder interface.
func (f RouteFunc) Add(app *web.App, cfg mux.Config) {
	f(app, cfg)
}

// Test contains the api under test and the mock behind it.
type Test struct {
	Mock       sqlmock.Sqlmock
	Handler    http.Handler
	BusinessID uuid.UUID
}

// New builds the full web api over a mocked database. Every business core
// is wired the way the service wires it.
func New(t *testing.T, routes mux.RouteAdder) *Test {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { sqlDB.Close() })

	db := sqlx.NewDb(sqlDB, "pgx")
	log := logger.New(io.Discard, logger.LevelDebug, "TEST", nil)

	userBus := userbus.NewCore(userdb.NewStore(log, db))

	a, err := auth.New(auth.Config{
		Log:             log,
		UserBus:         userBus,
		Mode:            auth.ModeHeader,
		PrincipalHeader: PrincipalHeader,
	})
	require.NoError(t, err)

	cfg := mux.Config{
		Build:  "test",
		Log:    log,
		DB:     db,
		Tracer: noop.NewTracerProvider().Tracer("test"),
		BusConfig: mux.BusConfig{
			UserBus:      userBus,
			BusinessBus:  businessbus.NewCore(log, businessdb.NewStore(log, db)),
			CustomerBus:  customerbus.NewCore(customerdb.NewStore(log, db)),
			ActivityBus:  activitybus.NewCore(activitydb.NewStore(log, db)),
			InviteBus:    invitebus.NewCore(invitedb.NewStore(log, db)),
			AnalyticsBus: analyticsbus.NewCore(analyticsdb.NewStore(log, db)),
		},
		AuthConfig: mux.AuthConfig{
			Auth: a,
		},
	}

	return &Test{
		Mock:       mock,
		Handler:    mux.WebAPI(cfg, routes),
		BusinessID: uuid.New(),
	}
}

// ExpectIdentity expects the identity lookup for the subject and answers
// with an active member of the test business.
func (at *Test) ExpectIdentity(sub string, r role.Role) {
	at.Mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND status = 'ACTIVE'`)).
		WithArgs(sub).
		WillReturnRows(sqlmock.NewRows(UserColumns).
			AddRow(sub, at.BusinessID.String(), sub+"@example.com", r.String(), "ACTIVE", time.Now(), nil))
}

// ExpectNoIdentity expects the identity lookup for the subject and finds
// nothing, as for an unknown or deactivated member.
func (at *Test) ExpectNoIdentity(sub string) {
	at.Mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND status = 'ACTIVE'`)).
		WithArgs(sub).
		WillReturnRows(sqlmock.NewRows(UserColumns))
}

// =============================================================================

// Envelope is the decoded response body.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Response is what a request produced.
type Response struct {
	StatusCode  int
	ContentType string
	Body        Envelope
}

// Do sends the request as the principal; an empty principal sends none. A
// string body is sent as is, anything else is marshaled to JSON.
func (at *Test) Do(t *testing.T, method string, path string, principal string, body any) Response {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, r)
	if principal != "" {
		req.Header.Set(PrincipalHeader, principal)
	}

	w := httptest.NewRecorder()
	at.Handler.ServeHTTP(w, req)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())

	return Response{
		StatusCode:  w.Code,
		ContentType: w.Header().Get("Content-Type"),
		Body:        env,
	}
}

// Data decodes the data of a successful response into v.
func (resp Response) Data(t *testing.T, v any) {
	t.Helper()

	require.True(t, resp.Body.Success, resp.Body.Error)
	require.NoError(t, json.Unmarshal(resp.Body.Data, v))
}
