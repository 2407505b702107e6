// Package mid provides app level middleware support.
package mid

import (
	"context"
	"errors"
	"net/http"

	"github.com/jcpaschoal/admindashboard/app/sdk/auth"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
)

func checkIsError(e web.Encoder) error {
	err, hasError := e.(error)
	if hasError {
		return err
	}

	return nil
}

type httpStatus interface {
	HTTPStatus() int
}

// statusOf reports the status code Respond will use for the value.
func statusOf(e web.Encoder) int {
	if hs, ok := e.(httpStatus); ok {
		return hs.HTTPStatus()
	}

	if checkIsError(e) != nil {
		return http.StatusInternalServerError
	}

	return http.StatusOK
}

// =============================================================================

type ctxKey int

const (
	principalKey ctxKey = iota + 1
	userContextKey
)

func setPrincipal(ctx context.Context, principal string) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// GetPrincipal returns the authenticated subject from the context.
func GetPrincipal(ctx context.Context) (string, error) {
	v, ok := ctx.Value(principalKey).(string)
	if !ok {
		return "", errors.New("principal not found in context")
	}

	return v, nil
}

func setUserContext(ctx context.Context, uc auth.UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, uc)
}

// GetUserContext returns the resolved user context from the context.
func GetUserContext(ctx context.Context) (auth.UserContext, error) {
	v, ok := ctx.Value(userContextKey).(auth.UserContext)
	if !ok {
		return auth.UserContext{}, errors.New("user context not found in context")
	}

	return v, nil
}
