// Package activityapp maintains the app layer api for logging customer
// activities.
package activityapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/app/sdk/errs"
	"github.com/jcpaschoal/admindashboard/app/sdk/mid"
	"github.com/jcpaschoal/admindashboard/business/domain/activitybus"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
)

var (
	errTypeRequired  = errors.New("Activity type is required")
	errInvalidAmount = errors.New("Invalid amount")
	errInvalidID     = errors.New("Invalid customer id")
	errNotFound      = errors.New("Customer not found")
)

type app struct {
	activityBus *activitybus.Core
}

func newApp(activityBus *activitybus.Core) *app {
	return &app{
		activityBus: activityBus,
	}
}

// create logs an activity against a customer of the caller's business, as
// the caller.
func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	customerID, err := uuid.Parse(web.Param(r, "id"))
	if err != nil {
		return errs.New(errs.InvalidArgument, errInvalidID)
	}

	var app NewActivity
	if err := web.Decode(r, &app); err != nil {
		if errors.Is(err, errInvalidAmount) {
			return errs.New(errs.InvalidArgument, errInvalidAmount)
		}
		return errs.NewDecode(err)
	}

	uc, err := mid.GetUserContext(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "user context missing: %s", err)
	}

	na := toBusNewActivity(app, customerID, uc.UserID)

	act, err := a.activityBus.Create(ctx, uc.BusinessID, na)
	if err != nil {
		if errors.Is(err, activitybus.ErrCustomerNotFound) {
			return errs.New(errs.NotFound, errNotFound)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create: customerID[%s]: %s", customerID, err)
	}

	return toAppActivity(act)
}
