package analyticsapp

import (
	"net/http"

	"github.com/jcpaschoal/admindashboard/business/domain/analyticsbus"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	AnalyticsBus *analyticsbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	api := newApp(cfg.AnalyticsBus)

	app.HandlerFunc(http.MethodGet, version, "/analytics", api.query)
}
