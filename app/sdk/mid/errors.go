package mid

import (
	"context"
	"net/http"
	"path"

	"github.com/jcpaschoal/admindashboard/app/sdk/errs"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
	"github.com/jcpaschoal/admindashboard/foundation/logger"
)

// Errors handles errors coming out of the call chain. Every error is logged
// with its cause; internal errors reach the client only as a generic
// message.
func Errors(log *logger.Logger) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			resp := next(ctx, r)
			err := checkIsError(resp)
			if err == nil {
				return resp
			}

			var appErr *errs.Error
			switch {
			case errs.IsError(err):
				appErr = errs.GetError(err)

			default:
				appErr = errs.Errorf(errs.Internal, "%s", err)
			}

			log.Error(ctx, "handled error during request",
				"err", err,
				"source_err_file", path.Base(appErr.FileName),
				"source_err_func", path.Base(appErr.FuncName))

			if appErr.Code == errs.Internal || appErr.Code == errs.InternalOnlyLog {
				appErr = errs.Newf(appErr.Code, "Internal server error")
			}

			return appErr
		}

		return h
	}

	return m
}
