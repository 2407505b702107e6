// Package all binds all the routes into the specified app.
package all

import (
	"github.com/jcpaschoal/admindashboard/app/domain/activityapp"
	"github.com/jcpaschoal/admindashboard/app/domain/analyticsapp"
	"github.com/jcpaschoal/admindashboard/app/domain/checkapp"
	"github.com/jcpaschoal/admindashboard/app/domain/customerapp"
	"github.com/jcpaschoal/admindashboard/app/domain/meapp"
	"github.com/jcpaschoal/admindashboard/app/domain/teamapp"
	"github.com/jcpaschoal/admindashboard/app/sdk/mux"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
)

// Routes constructs the add value which provides the implementation of
// of RouteAdder for specifying what routes to bind to this instance.
func Routes() add {
	return add{}
}

type add struct{}

// Add implements the RouteAdder interface. The dispatch order is the order
// the groups are added in.
func (add) Add(app *web.App, cfg mux.Config) {
	checkapp.Routes(app, checkapp.Config{
		Build: cfg.Build,
		Log:   cfg.Log,
		DB:    cfg.DB,
	})

	teamapp.Routes(app, teamapp.Config{
		UserBus:   cfg.BusConfig.UserBus,
		InviteBus: cfg.BusConfig.InviteBus,
	})

	customerapp.Routes(app, customerapp.Config{
		CustomerBus: cfg.BusConfig.CustomerBus,
		ActivityBus: cfg.BusConfig.ActivityBus,
	})

	activityapp.Routes(app, activityapp.Config{
		ActivityBus: cfg.BusConfig.ActivityBus,
	})

	analyticsapp.Routes(app, analyticsapp.Config{
		AnalyticsBus: cfg.BusConfig.AnalyticsBus,
	})

	meapp.Routes(app, meapp.Config{
		BusinessBus: cfg.BusConfig.BusinessBus,
	})
}
