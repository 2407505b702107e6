package meapp

import (
	"net/http"

	"github.com/jcpaschoal/admindashboard/business/domain/businessbus"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	BusinessBus *businessbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	api := newApp(cfg.BusinessBus)

	app.HandlerFunc(http.MethodGet, version, "/me", api.query)
}
