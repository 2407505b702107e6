package customerapp

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/jcpaschoal/admindashboard/app/sdk/errs"
	"github.com/jcpaschoal/admindashboard/business/domain/activitybus"
	"github.com/jcpaschoal/admindashboard/business/domain/customerbus"
	"github.com/jcpaschoal/admindashboard/business/types/name"
	"github.com/jcpaschoal/admindashboard/business/types/phone"
)

// Customer represents a customer of the caller's business. Optional fields
// are encoded as null when absent.
type Customer struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Notes     *string `json:"notes"`
	CreatedAt string  `json:"createdAt"`
}

// Encode implements the web.Encoder interface.
func (c Customer) Encode() ([]byte, string, error) {
	data, err := json.Marshal(c)
	return data, "application/json", err
}

func toAppCustomer(bus customerbus.Customer) Customer {
	return Customer{
		ID:        bus.ID.String(),
		Name:      bus.Name.String(),
		Email:     bus.Email,
		Phone:     bus.Phone,
		Notes:     bus.Notes,
		CreatedAt: bus.CreatedAt.Format(time.RFC3339),
	}
}

// Customers is the list of customers of a business.
type Customers []Customer

// Encode implements the web.Encoder interface.
func (c Customers) Encode() ([]byte, string, error) {
	data, err := json.Marshal(c)
	return data, "application/json", err
}

func toAppCustomers(csts []customerbus.Customer) Customers {
	app := make(Customers, len(csts))
	for i, cst := range csts {
		app[i] = toAppCustomer(cst)
	}
	return app
}

// CreatedCustomer is a Customer answered with 201.
type CreatedCustomer struct {
	Customer
}

// HTTPStatus implements the web package httpStatus interface.
func (c CreatedCustomer) HTTPStatus() int {
	return http.StatusCreated
}

// =============================================================================

// Activity is an activity as listed under its customer.
type Activity struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	CreatedAt   string   `json:"createdAt"`
	UserEmail   string   `json:"userEmail"`
}

func toAppActivities(acts []activitybus.Activity) []Activity {
	app := make([]Activity, len(acts))
	for i, act := range acts {
		app[i] = Activity{
			ID:          act.ID.String(),
			Type:        act.Type,
			Description: act.Description,
			Amount:      act.Amount,
			CreatedAt:   act.CreatedAt.Format(time.RFC3339),
			UserEmail:   act.UserEmail,
		}
	}
	return app
}

// CustomerDetail is a customer together with its activities, newest first.
type CustomerDetail struct {
	Customer
	Activities []Activity `json:"activities"`
}

// Encode implements the web.Encoder interface.
func (c CustomerDetail) Encode() ([]byte, string, error) {
	data, err := json.Marshal(c)
	return data, "application/json", err
}

// =============================================================================

// NewCustomer defines the data needed to add a customer.
type NewCustomer struct {
	Name  string  `json:"name" validate:"notblank"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

// Decode implements the web.Decoder interface.
func (app *NewCustomer) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewCustomer) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, errNameRequired)
	}
	return nil
}

func toBusNewCustomer(app NewCustomer) (customerbus.NewCustomer, error) {
	nme, err := name.Parse(app.Name)
	if err != nil {
		return customerbus.NewCustomer{}, errNameRequired
	}

	ph, err := phone.ParseNull(deref(app.Phone))
	if err != nil {
		return customerbus.NewCustomer{}, err
	}

	nc := customerbus.NewCustomer{
		Name:  nme,
		Email: optional(app.Email),
		Phone: ph.Ptr(),
		Notes: optional(app.Notes),
	}

	return nc, nil
}

// =============================================================================

// UpdateCustomer replaces the editable fields of a customer. Fields left out
// are cleared.
type UpdateCustomer struct {
	Name  string  `json:"name" validate:"notblank"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateCustomer) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateCustomer) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, errNameRequired)
	}
	return nil
}

func toBusUpdateCustomer(app UpdateCustomer) (customerbus.UpdateCustomer, error) {
	nme, err := name.Parse(app.Name)
	if err != nil {
		return customerbus.UpdateCustomer{}, errNameRequired
	}

	ph, err := phone.ParseNull(deref(app.Phone))
	if err != nil {
		return customerbus.UpdateCustomer{}, err
	}

	uc := customerbus.UpdateCustomer{
		Name:  nme,
		Email: optional(app.Email),
		Phone: ph.Ptr(),
		Notes: optional(app.Notes),
	}

	return uc, nil
}

// UpdatedCustomer echoes the stored fields after an update.
type UpdatedCustomer struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

// Encode implements the web.Encoder interface.
func (u UpdatedCustomer) Encode() ([]byte, string, error) {
	data, err := json.Marshal(u)
	return data, "application/json", err
}

func toAppUpdatedCustomer(bus customerbus.Customer) UpdatedCustomer {
	return UpdatedCustomer{
		ID:    bus.ID.String(),
		Name:  bus.Name.String(),
		Email: bus.Email,
		Phone: bus.Phone,
		Notes: bus.Notes,
	}
}

// =============================================================================

// DeletedCustomer is returned by a delete whether or not a row was removed.
type DeletedCustomer struct {
	ID string `json:"id"`
}

// Encode implements the web.Encoder interface.
func (d DeletedCustomer) Encode() ([]byte, string, error) {
	data, err := json.Marshal(d)
	return data, "application/json", err
}

// =============================================================================

// optional trims the value; blank means absent.
func optional(s *string) *string {
	if s == nil {
		return nil
	}

	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}

	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
