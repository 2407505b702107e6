// Package customerapp maintains the app layer api for the customers of a
// business.
package customerapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/app/sdk/errs"
	"github.com/jcpaschoal/admindashboard/app/sdk/mid"
	"github.com/jcpaschoal/admindashboard/business/domain/activitybus"
	"github.com/jcpaschoal/admindashboard/business/domain/customerbus"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
	"golang.org/x/sync/errgroup"
)

var (
	errNameRequired = errors.New("Name is required")
	errInvalidID    = errors.New("Invalid customer id")
	errNotFound     = errors.New("Customer not found")
)

type app struct {
	customerBus *customerbus.Core
	activityBus *activitybus.Core
}

func newApp(customerBus *customerbus.Core, activityBus *activitybus.Core) *app {
	return &app{
		customerBus: customerBus,
		activityBus: activityBus,
	}
}

func (a *app) query(ctx context.Context, r *http.Request) web.Encoder {
	uc, err := mid.GetUserContext(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "user context missing: %s", err)
	}

	filter := parseFilter(r)

	csts, err := a.customerBus.Query(ctx, uc.BusinessID, filter)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query: %s", err)
	}

	return toAppCustomers(csts)
}

func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewCustomer
	if err := web.Decode(r, &app); err != nil {
		return errs.NewDecode(err)
	}

	nc, err := toBusNewCustomer(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	uc, err := mid.GetUserContext(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "user context missing: %s", err)
	}

	cst, err := a.customerBus.Create(ctx, uc.BusinessID, nc)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "create: %s", err)
	}

	return CreatedCustomer{Customer: toAppCustomer(cst)}
}

// queryByID returns the customer and its activities. Both reads run at the
// same time.
func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	customerID, err := uuid.Parse(web.Param(r, "id"))
	if err != nil {
		return errs.New(errs.InvalidArgument, errInvalidID)
	}

	uc, err := mid.GetUserContext(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "user context missing: %s", err)
	}

	var (
		cst  customerbus.Customer
		acts []activitybus.Activity
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		cst, err = a.customerBus.QueryByID(gctx, uc.BusinessID, customerID)
		return err
	})

	g.Go(func() (err error) {
		acts, err = a.activityBus.QueryByCustomer(gctx, uc.BusinessID, customerID)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, customerbus.ErrNotFound) {
			return errs.New(errs.NotFound, errNotFound)
		}
		return errs.Errorf(errs.InternalOnlyLog, "querybyid: customerID[%s]: %s", customerID, err)
	}

	return CustomerDetail{
		Customer:   toAppCustomer(cst),
		Activities: toAppActivities(acts),
	}
}

func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	customerID, err := uuid.Parse(web.Param(r, "id"))
	if err != nil {
		return errs.New(errs.InvalidArgument, errInvalidID)
	}

	var app UpdateCustomer
	if err := web.Decode(r, &app); err != nil {
		return errs.NewDecode(err)
	}

	upd, err := toBusUpdateCustomer(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	uc, err := mid.GetUserContext(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "user context missing: %s", err)
	}

	cst, err := a.customerBus.Update(ctx, uc.BusinessID, customerID, upd)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "update: %s", err)
	}

	return toAppUpdatedCustomer(cst)
}

// delete always answers with the id so callers cannot tell a missing
// customer from a removed one.
func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	customerID, err := uuid.Parse(web.Param(r, "id"))
	if err != nil {
		return errs.New(errs.InvalidArgument, errInvalidID)
	}

	uc, err := mid.GetUserContext(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "user context missing: %s", err)
	}

	if err := a.customerBus.Delete(ctx, uc.BusinessID, customerID); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: %s", err)
	}

	return DeletedCustomer{ID: customerID.String()}
}
