package mid

import (
	"context"
	"net/http"
	"time"

	"github.com/jcpaschoal/admindashboard/app/sdk/metrics"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
)

// Metrics updates program counters.
func Metrics() web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			now := time.Now()

			resp := next(ctx, r)

			metrics.AddRequest(r.Method, statusOf(resp), time.Since(now))

			if checkIsError(resp) != nil {
				metrics.AddErrors()
			}

			return resp
		}

		return h
	}

	return m
}
