// Package meapp maintains the app layer api that tells the frontend who the
// caller is.
package meapp

import (
	"context"
	"net/http"

	"github.com/jcpaschoal/admindashboard/app/sdk/errs"
	"github.com/jcpaschoal/admindashboard/app/sdk/mid"
	"github.com/jcpaschoal/admindashboard/business/domain/businessbus"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
)

type app struct {
	businessBus *businessbus.Core
}

func newApp(businessBus *businessbus.Core) *app {
	return &app{
		businessBus: businessBus,
	}
}

func (a *app) query(ctx context.Context, _ *http.Request) web.Encoder {
	uc, err := mid.GetUserContext(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "user context missing: %s", err)
	}

	biz, err := a.businessBus.QueryByID(ctx, uc.BusinessID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "querybyid: businessID[%s]: %s", uc.BusinessID, err)
	}

	return toAppMe(uc, biz)
}
