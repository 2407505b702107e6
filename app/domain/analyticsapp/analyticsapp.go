// Package analyticsapp maintains the app layer api for the dashboard metrics.
package analyticsapp

import (
	"context"
	"net/http"

	"github.com/jcpaschoal/admindashboard/app/sdk/errs"
	"github.com/jcpaschoal/admindashboard/app/sdk/mid"
	"github.com/jcpaschoal/admindashboard/business/domain/analyticsbus"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
)

type app struct {
	analyticsBus *analyticsbus.Core
}

func newApp(analyticsBus *analyticsbus.Core) *app {
	return &app{
		analyticsBus: analyticsBus,
	}
}

func (a *app) query(ctx context.Context, r *http.Request) web.Encoder {
	days, err := parseDays(r)
	if err != nil {
		return errs.NewFieldErrors("days", err)
	}

	uc, err := mid.GetUserContext(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "user context missing: %s", err)
	}

	sum, err := a.analyticsBus.Summary(ctx, uc.BusinessID, days)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "summary: days[%d]: %s", days, err)
	}

	return toAppAnalytics(sum)
}
