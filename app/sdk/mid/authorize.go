package mid

import (
	"context"
	"net/http"

	"github.com/jcpaschoal/admindashboard/app/sdk/auth"
	"github.com/jcpaschoal/admindashboard/app/sdk/errs"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
	"github.com/jcpaschoal/admindashboard/business/types/role"
)

// Authorize valida se o usuário resolvido possui um dos papéis da rota.
// Roda antes do handler, portanto antes de qualquer leitura do body.
func Authorize(roles ...role.Role) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			uc, err := GetUserContext(ctx)
			if err != nil {
				return errs.New(errs.Unauthenticated, err)
			}

			if err := auth.Authorize(uc, roles...); err != nil {
				return errs.Newf(errs.PermissionDenied, "Forbidden")
			}

			return next(ctx, r)
		}

		return h
	}

	return m
}
