// Package web contains a small web framework extension.
package web

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/jcpaschoal/admindashboard/foundation/otel"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Encoder defines behavior that can encode a data model and provide
// the content type for that encoding.
type Encoder interface {
	Encode() (data []byte, contentType string, err error)
}

// HandlerFunc represents a function that handles a http request within our own
// little mini framework.
type HandlerFunc func(ctx context.Context, r *http.Request) Encoder

// Logger represents a function that will be called to add information
// to the logs.
type Logger func(ctx context.Context, msg string, args ...any)

// App is the entrypoint into our application and what configures our context
// object for each of our http handlers. Routes registered with HandlerFunc
// form an ordered dispatch table; the application middleware wraps the whole
// dispatch, so it runs before a route is selected and also for requests that
// match nothing.
type App struct {
	log         Logger
	tracer      trace.Tracer
	raw         *http.ServeMux
	otmux       http.Handler
	mw          []MidFunc
	routes      []route
	notFound    HandlerFunc
	origins     []string
	corsHeaders []string
}

// NewApp creates an App value that handle a set of routes for the application.
func NewApp(log Logger, tracer trace.Tracer, mw ...MidFunc) *App {
	a := App{
		log:      log,
		tracer:   tracer,
		raw:      http.NewServeMux(),
		mw:       mw,
		notFound: notFound,
	}

	// Create an OpenTelemetry HTTP Handler which wraps our router. This will
	// start the initial span and annotate it with information about the
	// request/trusted.
	a.otmux = otelhttp.NewHandler(http.HandlerFunc(a.serve), "request")

	return &a
}

// ServeHTTP implements the http.Handler interface. It's the entry point for
// all http traffic and allows the opentelemetry mux to run first to handle
// tracing.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.otmux.ServeHTTP(w, r)
}

// EnableCORS enables CORS preflight requests to work in the middleware. It
// prevents the MethodNotAllowedHandler from being called. Headers lists the
// request headers a browser is allowed to send.
func (a *App) EnableCORS(origins []string, headers ...string) {
	a.origins = origins
	a.corsHeaders = append([]string{"Content-Type", "Authorization"}, headers...)
}

// NotFound replaces the handler used when no route matches the request. It
// still runs inside the application middleware.
func (a *App) NotFound(handler HandlerFunc) {
	a.notFound = handler
}

// HandlerFunc appends a handler to the dispatch table. Routes are tried in
// registration order and the first one whose method and path match wins.
// Path segments written as {name} capture one non-empty segment, readable
// through Param.
func (a *App) HandlerFunc(method string, group string, path string, handlerFunc HandlerFunc, mw ...MidFunc) {
	handlerFunc = wrapMiddleware(mw, handlerFunc)

	a.routes = append(a.routes, newRoute(method, finalPath(group, path), handlerFunc))
}

// HandlerFuncNoMid sets a handler function for a given HTTP method and path
// pair that runs outside the dispatch table and without the application
// middleware. It is meant for infrastructure endpoints like health checks.
func (a *App) HandlerFuncNoMid(method string, group string, path string, handlerFunc HandlerFunc) {
	h := func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.InjectTracing(r.Context(), a.tracer)

		resp := handlerFunc(ctx, r)

		if err := Respond(ctx, w, resp); err != nil {
			a.log(ctx, "web-respond", "ERROR", err)
		}
	}

	a.raw.HandleFunc(method+" "+finalPath(group, path), h)
}

// =============================================================================

func (a *App) serve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if len(a.origins) > 0 {
		a.setCORSHeaders(w, r)

		if r.Method == http.MethodOptions {
			if err := Respond(ctx, w, cors{Status: "OK"}); err != nil {
				a.log(ctx, "web-respond", "ERROR", err)
			}
			return
		}
	}

	if h, pattern := a.raw.Handler(r); pattern != "" {
		h.ServeHTTP(w, r)
		return
	}

	handler := wrapMiddleware(a.mw, a.dispatch)

	resp := handler(ctx, r)

	if err := Respond(ctx, w, resp); err != nil {
		a.log(ctx, "web-respond", "ERROR", err)
	}
}

func (a *App) dispatch(ctx context.Context, r *http.Request) Encoder {
	for _, rt := range a.routes {
		values, ok := rt.match(r.Method, r.URL.Path)
		if !ok {
			continue
		}

		for name, value := range values {
			r.SetPathValue(name, value)
		}

		trace.SpanFromContext(ctx).SetAttributes(attribute.String("http.route", rt.pattern))

		return rt.handler(ctx, r)
	}

	return a.notFound(ctx, r)
}

func (a *App) setCORSHeaders(w http.ResponseWriter, r *http.Request) {
	origin := "*"
	if !slices.Contains(a.origins, "*") {
		reqOrigin := r.Header.Get("Origin")
		if !slices.Contains(a.origins, reqOrigin) {
			return
		}
		origin = reqOrigin
		w.Header().Add("Vary", "Origin")
	}

	w.Header().Set("Access-Control-Allow-Origin", origin)
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", strings.Join(a.corsHeaders, ", "))
	w.Header().Set("Access-Control-Max-Age", "86400")
}

func finalPath(group string, path string) string {
	if group == "" {
		return path
	}

	return "/" + group + path
}

// =============================================================================

type cors struct {
	Status string `json:"status"`
}

// Encode implements the Encoder interface.
func (c cors) Encode() ([]byte, string, error) {
	return []byte(`{"status":"` + c.Status + `"}`), "application/json", nil
}

type statusError struct {
	code int
}

func (e statusError) Error() string {
	return http.StatusText(e.code)
}

func (e statusError) Encode() ([]byte, string, error) {
	return nil, "application/json", nil
}

func (e statusError) HTTPStatus() int {
	return e.code
}

func notFound(ctx context.Context, r *http.Request) Encoder {
	return statusError{code: http.StatusNotFound}
}
