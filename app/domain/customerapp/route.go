package customerapp

import (
	"net/http"

	"github.com/jcpaschoal/admindashboard/business/domain/activitybus"
	"github.com/jcpaschoal/admindashboard/business/domain/customerbus"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	CustomerBus *customerbus.Core
	ActivityBus *activitybus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	api := newApp(cfg.CustomerBus, cfg.ActivityBus)

	app.HandlerFunc(http.MethodGet, version, "/customers", api.query)
	app.HandlerFunc(http.MethodPost, version, "/customers", api.create)
	app.HandlerFunc(http.MethodGet, version, "/customers/{id}", api.queryByID)
	app.HandlerFunc(http.MethodPatch, version, "/customers/{id}", api.update)
	app.HandlerFunc(http.MethodDelete, version, "/customers/{id}", api.delete)
}
