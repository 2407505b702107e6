package activityapp

import (
	"net/http"

	"github.com/jcpaschoal/admindashboard/business/domain/activitybus"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	ActivityBus *activitybus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	api := newApp(cfg.ActivityBus)

	app.HandlerFunc(http.MethodPost, version, "/customers/{id}/activity", api.create)
}
