package mid

import (
	"context"
	"errors"
	"net/http"

	"github.com/jcpaschoal/admindashboard/app/sdk/auth"
	"github.com/jcpaschoal/admindashboard/app/sdk/errs"
	"github.com/jcpaschoal/admindashboard/business/domain/userbus"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
)

// Authenticate extracts the principal of the request. A request without one
// is rejected before anything else runs, whatever its path.
func Authenticate(a *auth.Auth) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			principal, err := a.Principal(ctx, r)
			if err != nil {
				return errs.Newf(errs.Unauthenticated, "Unauthorized")
			}

			ctx = setPrincipal(ctx, principal)

			return next(ctx, r)
		}

		return h
	}

	return m
}

// Identify resolves the principal into the user context the handlers run
// as. Unknown or inactive users are rejected as unauthenticated; a failing
// lookup is an internal error.
func Identify(a *auth.Auth) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			principal, err := GetPrincipal(ctx)
			if err != nil {
				return errs.New(errs.Unauthenticated, err)
			}

			uc, err := a.Resolve(ctx, principal)
			if err != nil {
				if errors.Is(err, userbus.ErrNotFoundOrInactive) {
					return errs.New(errs.Unauthenticated, userbus.ErrNotFoundOrInactive)
				}
				return errs.Errorf(errs.Internal, "identify: %s", err)
			}

			ctx = setUserContext(ctx, uc)

			return next(ctx, r)
		}

		return h
	}

	return m
}
