package bootstrap

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/shelbymodels/auth-service/internal/application/auth"
	"github.com/shelbymodels/auth-service/internal/config"
	"github.com/shelbymodels/auth-service/internal/infrastructure/db/postgres"
	"github.com/shelbymodels/auth-service/internal/infrastructure/memory"
	rabbitmq_pub "github.com/shelbymodels/auth-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/shelbymodels/auth-service/internal/infrastructure/redis"
	"github.com/shelbymodels/auth-service/internal/infrastructure/security"
	"github.com/shelbymodels/auth-service/internal/logger"
	http_handlers "github.com/shelbymodels/auth-service/internal/transport/http/handlers"
	"github.com/shelbymodels/auth-service/internal/transport/http/middleware"
	"github.com/shelbymodels/auth-service/internal/transport/http/response"
	"github.com/shelbymodels/auth-service/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(addr string, debug bool) (*sql.DB, error)

	NewRedis func(addr, password string, db int) RedisClient

	NewPublisher func(rabbitURL string) (auth.EventPublisher, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

type RedisClient interface {
	Ping(ctx context.Context) error
	Close() error
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	var cleanupFns []func()

	// 1) credential store
	var accountRepo auth.AccountRepo
	var sqlDB *sql.DB

	if cfg.DBAddr != "" {
		db, err := deps.NewDB(cfg.DBAddr, cfg.Env == "dev")
		if err != nil {
			return nil, nil, err
		}
		cleanupFns = append(cleanupFns, func() { _ = db.Close() })
		sqlDB = db
		accountRepo = postgres.NewAccountRepo(db)
	} else {
		// config.Load only allows an empty DB_ADDR in dev
		logger.Logger.Warn().Msg("no DB_ADDR; using in-memory account store")
		accountRepo = memory.NewAccountRepo()
	}

	// 2) redis (best-effort profile cache)
	if deps.NewRedis != nil && cfg.RedisAddr != "" {
		c := deps.NewRedis(cfg.RedisAddr, "", 0)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := c.Ping(ctx); err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; profile cache disabled")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
			if rc, ok := c.(*redis.Client); ok {
				accountRepo = redis.NewCachedAccountRepo(accountRepo, rc, 5*time.Minute)
			}
		}
	}

	// 3) publisher
	var pub auth.EventPublisher
	if cfg.RabbitURL != "" {
		p, err := deps.NewPublisher(cfg.RabbitURL)
		if err != nil {
			if cfg.Env == "dev" {
				logger.Logger.Warn().Err(err).Msg("rabbitmq unavailable; using noop publisher")
				p = memory.NewNoopPublisher()
			} else {
				runCleanup(cleanupFns)
				return nil, nil, err
			}
		} else if sp, ok := p.(interface{ SetExchange(string) }); ok {
			sp.SetExchange(cfg.RabbitExchange)
		}
		if c, ok := p.(interface{ Close() error }); ok {
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
		pub = p
	} else {
		pub = memory.NewNoopPublisher()
	}

	// 4) security. A bad signing config aborts startup: issuing unsigned
	// or weakly-signed tokens is not a per-request error.
	logger.Logger.Info().Str("issuer", cfg.JWTIssuer).Str("audience", cfg.JWTAudience).Msg("initializing jwt issuer")
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	issuer, err := security.NewJWTIssuer(security.JWTConfig{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		TTL:      cfg.AccessTokenTTL,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 5) service
	authSvc := auth.NewService(accountRepo, hasher, issuer, pub, auth.Config{
		AccessTTL: cfg.AccessTokenTTL,
	})

	authSvc = authSvc.WithAudit(func(action string, fields map[string]string) {
		evt := logger.Logger.Info().
			Bool("audit", true).
			Str("action", action)
		for k, v := range fields {
			evt = evt.Str(k, v)
		}
		evt.Msg("audit")
	})

	// 6) handlers + middleware
	authH := http_handlers.NewAuthHandler(authSvc)
	healthH := http_handlers.NewHealthHandler(sqlDB)
	authMW := middleware.Auth(issuer, response.WriteError)

	// 7) router
	mux, err := deps.NewRouter(router.Deps{
		RequestIDMW: middleware.RequestID,
		Auth:        authH,
		Health:      healthH,
		AuthMW:      authMW,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 8) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB: func(addr string, debug bool) (*sql.DB, error) {
			return config.NewDB(addr, debug)
		},
		NewRedis: func(addr, password string, db int) RedisClient {
			return redis.New(addr, password, db)
		},
		NewPublisher: func(url string) (auth.EventPublisher, error) {
			return rabbitmq_pub.NewPublisher(url)
		},
		NewRouter: func(d router.Deps) (http.Handler, error) {
			return router.New(d)
		},
	}
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
