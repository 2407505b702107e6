package activityapp

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/app/sdk/errs"
	"github.com/jcpaschoal/admindashboard/business/domain/activitybus"
)

// Amount is an optional decimal that accepts a JSON number or a numeric
// string. Null, an empty string or a missing field leave it unset.
type Amount struct {
	value *float64
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		a.value = nil
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}

		raw = strings.TrimSpace(raw)
		if raw == "" {
			a.value = nil
			return nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return errInvalidAmount
	}

	a.value = &f
	return nil
}

// Ptr returns the amount or nil when it was not given.
func (a Amount) Ptr() *float64 {
	return a.value
}

// =============================================================================

// NewActivity defines the data needed to log an activity.
type NewActivity struct {
	Type        string  `json:"type" validate:"notblank"`
	Description *string `json:"description"`
	Amount      Amount  `json:"amount"`
}

// Decode implements the web.Decoder interface.
func (app *NewActivity) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewActivity) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, errTypeRequired)
	}
	return nil
}

func toBusNewActivity(app NewActivity, customerID uuid.UUID, userID string) activitybus.NewActivity {
	var desc *string
	if app.Description != nil {
		if d := strings.TrimSpace(*app.Description); d != "" {
			desc = &d
		}
	}

	return activitybus.NewActivity{
		CustomerID:  customerID,
		UserID:      userID,
		Type:        strings.TrimSpace(app.Type),
		Description: desc,
		Amount:      app.Amount.Ptr(),
	}
}

// =============================================================================

// Activity represents a logged activity together with its author.
type Activity struct {
	ID          string   `json:"id"`
	CustomerID  string   `json:"customerId"`
	Type        string   `json:"type"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	CreatedAt   string   `json:"createdAt"`
	UserID      string   `json:"userId"`
	UserEmail   string   `json:"userEmail"`
}

// Encode implements the web.Encoder interface.
func (a Activity) Encode() ([]byte, string, error) {
	data, err := json.Marshal(a)
	return data, "application/json", err
}

// HTTPStatus implements the web package httpStatus interface.
func (a Activity) HTTPStatus() int {
	return http.StatusCreated
}

func toAppActivity(bus activitybus.Activity) Activity {
	return Activity{
		ID:          bus.ID.String(),
		CustomerID:  bus.CustomerID.String(),
		Type:        bus.Type,
		Description: bus.Description,
		Amount:      bus.Amount,
		CreatedAt:   bus.CreatedAt.Format(time.RFC3339),
		UserID:      bus.UserID,
		UserEmail:   bus.UserEmail,
	}
}
