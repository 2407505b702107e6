package main

import (
	"context"
	"encoding/json"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jcpaschoal/admindashboard/api/cmd/build/all"
	"github.com/jcpaschoal/admindashboard/app/sdk/auth"
	"github.com/jcpaschoal/admindashboard/app/sdk/debug"
	"github.com/jcpaschoal/admindashboard/app/sdk/mux"
	"github.com/jcpaschoal/admindashboard/business/domain/activitybus"
	"github.com/jcpaschoal/admindashboard/business/domain/activitybus/stores/activitydb"
	"github.com/jcpaschoal/admindashboard/business/domain/analyticsbus"
	"github.com/jcpaschoal/admindashboard/business/domain/analyticsbus/stores/analyticsdb"
	"github.com/jcpaschoal/admindashboard/business/domain/businessbus"
	"github.com/jcpaschoal/admindashboard/business/domain/businessbus/stores/businessdb"
	"github.com/jcpaschoal/admindashboard/business/domain/customerbus"
	"github.com/jcpaschoal/admindashboard/business/domain/customerbus/stores/customerdb"
	"github.com/jcpaschoal/admindashboard/business/domain/invitebus"
	"github.com/jcpaschoal/admindashboard/business/domain/invitebus/stores/invitedb"
	"github.com/jcpaschoal/admindashboard/business/domain/userbus"
	"github.com/jcpaschoal/admindashboard/business/domain/userbus/stores/userdb"
	"github.com/jcpaschoal/admindashboard/business/sdk/sqldb"
	"github.com/jcpaschoal/admindashboard/foundation/keystore"
	"github.com/jcpaschoal/admindashboard/foundation/logger"
	"github.com/jcpaschoal/admindashboard/foundation/otel"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var build = "develop"

type Config struct {
	Version struct {
		Build string `json:"build"`
		Desc  string `json:"desc"`
	} `json:"version"`

	Log struct {
		Level string `envconfig:"LOG_LEVEL" default:"INFO"`
	}
	Web struct {
		ReadTimeout        time.Duration `envconfig:"WEB_READ_TIMEOUT" default:"5s"`
		WriteTimeout       time.Duration `envconfig:"WEB_WRITE_TIMEOUT" default:"10s"`
		IdleTimeout        time.Duration `envconfig:"WEB_IDLE_TIMEOUT" default:"120s"`
		ShutdownTimeout    time.Duration `envconfig:"WEB_SHUTDOWN_TIMEOUT" default:"20s"`
		APIHost            string        `envconfig:"WEB_API_HOST" default:"0.0.0.0:3000"`
		DebugHost          string        `envconfig:"WEB_DEBUG_HOST" default:"0.0.0.0:3010"`
		CORSAllowedOrigins []string      `envconfig:"WEB_CORS_ALLOWED_ORIGINS" default:"*"`
	}
	DB struct {
		User         string `envconfig:"DB_USER" default:"postgres"`
		Password     string `envconfig:"DB_PASSWORD" default:"postgres"`
		Host         string `envconfig:"DB_HOST" default:"localhost"`
		Name         string `envconfig:"DB_NAME" default:"admindashboard"`
		MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"2"`
		MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
		DisableTLS   bool   `envconfig:"DB_DISABLE_TLS" default:"true"`
	}
	// Header mode trusts the principal header as sent. Only run it behind a
	// gateway that authenticates the caller and overwrites any
	// client-supplied copy of that header.
	Auth struct {
		Mode            string `envconfig:"AUTH_MODE" default:"jwt"`
		PrincipalHeader string `envconfig:"AUTH_PRINCIPAL_HEADER" default:"X-Principal-Id"`
		KeysFolder      string `envconfig:"AUTH_KEYS_FOLDER" default:"zarf/keys/"`
		Issuer          string `envconfig:"AUTH_ISSUER" default:"admindashboard"`
	}
	Tempo struct {
		Host        string  `envconfig:"TEMPO_HOST" default:""`
		ServiceName string  `envconfig:"TEMPO_SERVICE_NAME" default:"ADMIN-DASHBOARD"`
		Probability float64 `envconfig:"TEMPO_PROBABILITY" default:"0.05"`
	}
}

func main() {
	var log *logger.Logger

	events := logger.Events{
		Error: func(ctx context.Context, r logger.Record) {
			log.Info(ctx, "******* SEND ALERT *******")
		},
	}

	// O .env é opcional; variáveis já exportadas têm precedência.
	envErr := godotenv.Load()

	level := logger.ParseLevel(os.Getenv("LOG_LEVEL"))

	log = logger.NewWithEvents(os.Stdout, level, "ADMIN-DASHBOARD", otel.GetTraceID, events)

	// -------------------------------------------------------------------------

	ctx := context.Background()

	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		log.Error(ctx, "startup", "err", fmt.Errorf("loading .env: %w", envErr))
		os.Exit(1)
	}

	if err := run(ctx, log); err != nil {
		log.Error(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {

	// -------------------------------------------------------------------------
	// GOMAXPROCS

	log.Info(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// -------------------------------------------------------------------------
	// Configuration

	var cfg Config

	cfg.Version.Build = build
	cfg.Version.Desc = "ADMIN-DASHBOARD"

	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("processing config: %w", err)
	}

	// -------------------------------------------------------------------------
	// App Starting

	log.Info(ctx, "starting service", "version", cfg.Version.Build)
	defer log.Info(ctx, "shutdown complete")

	log.Info(ctx, "startup", "config", sanitizeConfig(cfg))

	log.BuildInfo(ctx)

	expvar.NewString("build").Set(cfg.Version.Build)

	// -------------------------------------------------------------------------
	// Database Support

	log.Info(ctx, "startup", "status", "initializing database support", "hostport", cfg.DB.Host)

	db, err := sqldb.Open(sqldb.Config{
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Host:         cfg.DB.Host,
		Name:         cfg.DB.Name,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		DisableTLS:   cfg.DB.DisableTLS,
	})
	if err != nil {
		return fmt.Errorf("connecting to db: %w", err)
	}

	defer db.Close()

	// -------------------------------------------------------------------------
	// Start Tracing Support

	log.Info(ctx, "startup", "status", "initializing tracing support")

	traceProvider, teardown, err := otel.InitTracing(log, otel.Config{
		ServiceName: cfg.Tempo.ServiceName,
		Host:        cfg.Tempo.Host,
		ExcludedRoutes: map[string]struct{}{
			"/v1/liveness":  {},
			"/v1/readiness": {},
		},
		Probability: cfg.Tempo.Probability,
	})
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}

	defer teardown(context.Background())

	tracer := traceProvider.Tracer(cfg.Tempo.ServiceName)

	// -------------------------------------------------------------------------
	// Business Support

	userBus := userbus.NewCore(userdb.NewStore(log, db))

	busCfg := mux.BusConfig{
		UserBus:      userBus,
		BusinessBus:  businessbus.NewCore(log, businessdb.NewStore(log, db)),
		CustomerBus:  customerbus.NewCore(customerdb.NewStore(log, db)),
		ActivityBus:  activitybus.NewCore(activitydb.NewStore(log, db)),
		InviteBus:    invitebus.NewCore(invitedb.NewStore(log, db)),
		AnalyticsBus: analyticsbus.NewCore(analyticsdb.NewStore(log, db)),
	}

	// -------------------------------------------------------------------------
	// Auth Support

	log.Info(ctx, "startup", "status", "initializing authentication support", "mode", cfg.Auth.Mode)

	if cfg.Auth.Mode == auth.ModeHeader {
		log.Warn(ctx, "startup", "status", "header auth enabled, the gateway must strip client-supplied principal headers", "header", cfg.Auth.PrincipalHeader)
	}

	var keyLookup auth.KeyLookup

	if cfg.Auth.Mode == auth.ModeJWT {
		ks := keystore.New()

		n, err := ks.LoadByFileSystem(os.DirFS(cfg.Auth.KeysFolder))
		if err != nil {
			return fmt.Errorf("loading keys: %w", err)
		}

		log.Info(ctx, "startup", "status", "keys loaded", "count", n)

		keyLookup = ks
	}

	authClient, err := auth.New(auth.Config{
		Log:             log,
		UserBus:         userBus,
		KeyLookup:       keyLookup,
		Issuer:          cfg.Auth.Issuer,
		Mode:            cfg.Auth.Mode,
		PrincipalHeader: cfg.Auth.PrincipalHeader,
	})
	if err != nil {
		return fmt.Errorf("constructing auth: %w", err)
	}

	// -------------------------------------------------------------------------
	// Start Debug Service

	go func() {
		log.Info(ctx, "startup", "status", "debug v1 router started", "host", cfg.Web.DebugHost)

		if err := http.ListenAndServe(cfg.Web.DebugHost, debug.Mux()); err != nil {
			log.Error(ctx, "shutdown", "status", "debug v1 router closed", "host", cfg.Web.DebugHost, "msg", err)
		}
	}()

	// -------------------------------------------------------------------------
	// Start API Service

	log.Info(ctx, "startup", "status", "initializing V1 API support")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	cfgMux := mux.Config{
		Build:     cfg.Version.Build,
		Log:       log,
		DB:        db,
		Tracer:    tracer,
		BusConfig: busCfg,
		AuthConfig: mux.AuthConfig{
			Auth: authClient,
		},
	}

	webAPI := mux.WebAPI(cfgMux,
		all.Routes(),
		mux.WithCORS(cfg.Web.CORSAllowedOrigins),
	)

	api := http.Server{
		Addr:         cfg.Web.APIHost,
		Handler:      webAPI,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     logger.NewStdLogger(log, logger.LevelError),
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info(ctx, "startup", "status", "api router started", "host", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	// -------------------------------------------------------------------------
	// Shutdown

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.Info(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func sanitizeConfig(cfg Config) string {
	cfg.DB.Password = "[MASKED]"

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Sprintf("%+v", cfg)
	}
	return string(data)
}
