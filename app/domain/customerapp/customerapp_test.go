package customerapp_test

import (
	"net/http"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/app/domain/customerapp"
	"github.com/jcpaschoal/admindashboard/app/sdk/apitest"
	"github.com/jcpaschoal/admindashboard/app/sdk/mux"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
	"github.com/jcpaschoal/admindashboard/business/types/phone"
	"github.com/jcpaschoal/admindashboard/business/types/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	customerColumns = []string{"id", "businessId", "name", "email", "phone", "notes", "createdAt"}
	activityColumns = []string{"id", "businessId", "customerId", "userId", "userEmail", "type", "description", "amount", "createdAt"}
)

func newTest(t *testing.T) *apitest.Test {
	return apitest.New(t, apitest.RouteFunc(func(app *web.App, cfg mux.Config) {
		customerapp.Routes(app, customerapp.Config{
			CustomerBus: cfg.BusConfig.CustomerBus,
			ActivityBus: cfg.BusConfig.ActivityBus,
		})
	}))
}

func ptr(s string) *string { return &s }

func TestCreateKeepsNulls(t *testing.T) {
	at := newTest(t)
	at.ExpectIdentity("sub-1", role.Staff)

	cstID := uuid.New()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	at.Mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "Customer"`)).
		WithArgs(at.BusinessID, "Jane Smith", nil, nil, nil).
		WillReturnRows(sqlmock.NewRows(customerColumns).
			AddRow(cstID.String(), at.BusinessID.String(), "Jane Smith", nil, nil, nil, created))

	resp := at.Do(t, http.MethodPost, "/v1/customers", "sub-1", map[string]string{"name": "  Jane Smith  ", "email": ""})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got customerapp.Customer
	resp.Data(t, &got)

	want := customerapp.Customer{
		ID:        cstID.String(),
		Name:      "Jane Smith",
		CreatedAt: "2025-03-01T10:00:00Z",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected customer (-want +got):\n%s", diff)
	}

	data := string(resp.Body.Data)
	assert.Contains(t, data, `"email":null`)
	assert.Contains(t, data, `"phone":null`)
	assert.Contains(t, data, `"notes":null`)
	assert.NoError(t, at.Mock.ExpectationsWereMet())
}

func TestCreateValidatesBeforeWriting(t *testing.T) {
	for _, body := range []string{`{"name":"   "}`, `{}`, ``} {
		at := newTest(t)
		at.ExpectIdentity("sub-1", role.Staff)

		resp := at.Do(t, http.MethodPost, "/v1/customers", "sub-1", body)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		assert.Equal(t, "Name is required", resp.Body.Error, body)
		assert.NoError(t, at.Mock.ExpectationsWereMet())
	}
}

func TestCreateKeepsPhoneAsGiven(t *testing.T) {
	phones := []string{"555-1234 x12", "+1 555-123-4567 ext. 89", "+44 (0)20 7946 0958 / 0959"}

	for _, ph := range phones {
		at := newTest(t)
		at.ExpectIdentity("sub-1", role.Staff)

		cstID := uuid.New()
		created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

		at.Mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "Customer"`)).
			WithArgs(at.BusinessID, "Jane", nil, ph, nil).
			WillReturnRows(sqlmock.NewRows(customerColumns).
				AddRow(cstID.String(), at.BusinessID.String(), "Jane", nil, ph, nil, created))

		resp := at.Do(t, http.MethodPost, "/v1/customers", "sub-1", map[string]string{"name": "Jane", "phone": " " + ph + " "})
		require.Equal(t, http.StatusCreated, resp.StatusCode, ph)

		var got customerapp.Customer
		resp.Data(t, &got)

		require.NotNil(t, got.Phone, ph)
		assert.Equal(t, ph, *got.Phone)
		assert.NoError(t, at.Mock.ExpectationsWereMet())
	}
}

func TestCreateRejectsOverlongPhone(t *testing.T) {
	at := newTest(t)
	at.ExpectIdentity("sub-1", role.Staff)

	body := map[string]string{"name": "Jane", "phone": strings.Repeat("5", phone.MaxLength+1)}

	resp := at.Do(t, http.MethodPost, "/v1/customers", "sub-1", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "phone is longer than 64 characters", resp.Body.Error)
	assert.NoError(t, at.Mock.ExpectationsWereMet())
}

func TestCreateDecodeErrorsStayClean(t *testing.T) {
	bodies := map[string]string{
		`{"name":"Jane","email":123}`: "Invalid value for email",
		`{"name":`:                    "Invalid JSON body",
		`[1,2]`:                       "Invalid request body",
	}

	for body, msg := range bodies {
		at := newTest(t)
		at.ExpectIdentity("sub-1", role.Staff)

		resp := at.Do(t, http.MethodPost, "/v1/customers", "sub-1", body)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		assert.Equal(t, msg, resp.Body.Error, body)
		assert.NoError(t, at.Mock.ExpectationsWereMet())
	}
}

func TestCreateRejectsMalformedJSON(t *testing.T) {
	at := newTest(t)
	at.ExpectIdentity("sub-1", role.Staff)

	resp := at.Do(t, http.MethodPost, "/v1/customers", "sub-1", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, at.Mock.ExpectationsWereMet())
}

func TestListWithSearch(t *testing.T) {
	at := newTest(t)
	at.ExpectIdentity("sub-1", role.Staff)

	at.Mock.ExpectQuery(regexp.QuoteMeta(`WHERE "businessId" = $1 AND (name ILIKE $2 OR email ILIKE $3) ORDER BY "createdAt" DESC`)).
		WithArgs(at.BusinessID, "%jane%", "%jane%").
		WillReturnRows(sqlmock.NewRows(customerColumns))

	resp := at.Do(t, http.MethodGet, "/v1/customers?search=jane", "sub-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(resp.Body.Data))
	assert.NoError(t, at.Mock.ExpectationsWereMet())
}

func TestGetWithActivities(t *testing.T) {
	at := newTest(t)
	at.ExpectIdentity("sub-1", role.Staff)
	at.Mock.MatchExpectationsInOrder(false)

	cstID := uuid.New()
	actID := uuid.New()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	at.Mock.ExpectQuery(regexp.QuoteMeta(`FROM "Customer" WHERE id = $1 AND "businessId" = $2`)).
		WithArgs(cstID, at.BusinessID).
		WillReturnRows(sqlmock.NewRows(customerColumns).
			AddRow(cstID.String(), at.BusinessID.String(), "Jane Smith", "jane@example.com", nil, nil, created))

	at.Mock.ExpectQuery(regexp.QuoteMeta(`WHERE a."customerId" = $1 AND a."businessId" = $2`)).
		WithArgs(cstID, at.BusinessID).
		WillReturnRows(sqlmock.NewRows(activityColumns).
			AddRow(actID.String(), at.BusinessID.String(), cstID.String(), "sub-1", "owner@example.com", "sale", nil, "250.5", created))

	resp := at.Do(t, http.MethodGet, "/v1/customers/"+cstID.String(), "sub-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got customerapp.CustomerDetail
	resp.Data(t, &got)

	amount := 250.5
	want := customerapp.CustomerDetail{
		Customer: customerapp.Customer{
			ID:        cstID.String(),
			Name:      "Jane Smith",
			Email:     ptr("jane@example.com"),
			CreatedAt: "2025-03-01T10:00:00Z",
		},
		Activities: []customerapp.Activity{{
			ID:        actID.String(),
			Type:      "sale",
			Amount:    &amount,
			CreatedAt: "2025-03-01T10:00:00Z",
			UserEmail: "owner@example.com",
		}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected customer (-want +got):\n%s", diff)
	}

	assert.NoError(t, at.Mock.ExpectationsWereMet())
}

func TestGetForeignCustomerIsNotFound(t *testing.T) {
	at := newTest(t)
	at.ExpectIdentity("sub-1", role.Staff)
	at.Mock.MatchExpectationsInOrder(false)

	foreignID := uuid.New()

	at.Mock.ExpectQuery(regexp.QuoteMeta(`FROM "Customer" WHERE id = $1 AND "businessId" = $2`)).
		WithArgs(foreignID, at.BusinessID).
		WillReturnRows(sqlmock.NewRows(customerColumns))

	at.Mock.ExpectQuery(regexp.QuoteMeta(`WHERE a."customerId" = $1 AND a."businessId" = $2`)).
		WithArgs(foreignID, at.BusinessID).
		WillReturnRows(sqlmock.NewRows(activityColumns))

	resp := at.Do(t, http.MethodGet, "/v1/customers/"+foreignID.String(), "sub-1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Customer not found", resp.Body.Error)
}

func TestMalformedIDIsRejectedBeforeIO(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		at := newTest(t)
		at.ExpectIdentity("sub-1", role.Staff)

		resp := at.Do(t, method, "/v1/customers/not-a-uuid", "sub-1", map[string]string{"name": "Jane"})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, method)
		assert.NoError(t, at.Mock.ExpectationsWereMet())
	}
}

func TestUpdateEchoesNormalizedInput(t *testing.T) {
	at := newTest(t)
	at.ExpectIdentity("sub-1", role.Staff)

	cstID := uuid.New()

	at.Mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $5 AND "businessId" = $6`)).
		WithArgs("Jane Doe", "jane@example.com", "+1 555 0100", nil, cstID, at.BusinessID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body := map[string]string{"name": " Jane Doe ", "email": "jane@example.com", "phone": "+1 555 0100", "notes": " "}

	resp := at.Do(t, http.MethodPatch, "/v1/customers/"+cstID.String(), "sub-1", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got customerapp.UpdatedCustomer
	resp.Data(t, &got)

	want := customerapp.UpdatedCustomer{
		ID:    cstID.String(),
		Name:  "Jane Doe",
		Email: ptr("jane@example.com"),
		Phone: ptr("+1 555 0100"),
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected customer (-want +got):\n%s", diff)
	}

	assert.NoError(t, at.Mock.ExpectationsWereMet())
}

func TestUpdateRequiresName(t *testing.T) {
	at := newTest(t)
	at.ExpectIdentity("sub-1", role.Staff)

	resp := at.Do(t, http.MethodPatch, "/v1/customers/"+uuid.NewString(), "sub-1", map[string]string{"email": "jane@example.com"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Name is required", resp.Body.Error)
	assert.NoError(t, at.Mock.ExpectationsWereMet())
}

func TestDeleteForeignCustomer(t *testing.T) {
	at := newTest(t)
	at.ExpectIdentity("sub-1", role.Staff)

	foreignID := uuid.New()

	at.Mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "Customer" WHERE id = $1 AND "businessId" = $2`)).
		WithArgs(foreignID, at.BusinessID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	resp := at.Do(t, http.MethodDelete, "/v1/customers/"+foreignID.String(), "sub-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got customerapp.DeletedCustomer
	resp.Data(t, &got)
	assert.Equal(t, foreignID.String(), got.ID)
	assert.NoError(t, at.Mock.ExpectationsWereMet())
}
