package teamapp

import (
	"net/http"

	"github.com/jcpaschoal/admindashboard/app/sdk/mid"
	"github.com/jcpaschoal/admindashboard/business/domain/invitebus"
	"github.com/jcpaschoal/admindashboard/business/domain/userbus"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
	"github.com/jcpaschoal/admindashboard/business/types/role"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	UserBus   *userbus.Core
	InviteBus *invitebus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	api := newApp(cfg.UserBus, cfg.InviteBus)

	app.HandlerFunc(http.MethodGet, version, "/team/members", api.query)
	app.HandlerFunc(http.MethodPatch, version, "/team/members/{id}/role", api.updateRole, mid.Authorize(role.Owner))
	app.HandlerFunc(http.MethodPatch, version, "/team/members/{id}/status", api.updateStatus, mid.Authorize(role.Owner, role.Manager))
	app.HandlerFunc(http.MethodPost, version, "/team/invite", api.invite, mid.Authorize(role.Owner))
}
