// Package server assembles the gin engine and runs the HTTP server.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/config"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/health"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/metrics"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/middleware"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/profile/repository"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/session"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/session/snapshot"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"

	authRouter "github.com/marceldopr/Volleyball-stats-definitiu/internal/auth/router"
	navigationRouter "github.com/marceldopr/Volleyball-stats-definitiu/internal/navigation/router"
	playerRouter "github.com/marceldopr/Volleyball-stats-definitiu/internal/player/router"
	reportRouter "github.com/marceldopr/Volleyball-stats-definitiu/internal/report/router"
	rosterRouter "github.com/marceldopr/Volleyball-stats-definitiu/internal/roster/router"
	seasonRouter "github.com/marceldopr/Volleyball-stats-definitiu/internal/season/router"
	teamRouter "github.com/marceldopr/Volleyball-stats-definitiu/internal/team/router"
)

// Deps are the collaborators of the HTTP API.
type Deps struct {
	// Client is the remote store used by every access function.
	Client store.Client
	// Auth signs users in and out.
	Auth store.Authenticator
	// Verifier, when set, checks access tokens on guarded routes.
	Verifier store.TokenVerifier
	// Snapshots persists session state; nil keeps it in memory.
	Snapshots snapshot.Store
	// Checks are probed by GET /health.
	Checks map[string]health.Checker

	Metrics *metrics.Metrics
	Clock   clockwork.Clock
	Logger  *zap.SugaredLogger
}

// NewRouter builds the gin engine. Routes under the authenticated group
// need a signed-in client with a club; everything else only needs the
// client cookie.
func NewRouter(cfg config.Config, deps Deps) *gin.Engine {
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	logger := deps.Logger

	client := metrics.InstrumentStore(deps.Client, deps.Metrics)
	profiles := repository.New(client, logger)
	registry := session.NewRegistry(deps.Auth, profiles, deps.Snapshots, cfg.Session.SnapshotName, logger)

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(deps.Metrics.Middleware())
	r.Use(corsMiddleware(cfg.CORS))

	r.GET("/health", health.New(deps.Checks, logger).Check)
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	api := r.Group("/")
	api.Use(middleware.Client(registry, middleware.CookieOptions{
		Name:   cfg.Session.CookieName,
		MaxAge: int(cfg.Session.CookieMaxAge / time.Second),
		Secure: cfg.Session.CookieSecure,
	}))

	authRouter.RegisterRoutes(api, deps.Metrics, logger)

	authenticated := api.Group("/")
	authenticated.Use(middleware.RequireAuth(deps.Verifier, logger))

	navigationRouter.RegisterRoutes(api, authenticated, logger)
	playerRouter.RegisterRoutes(authenticated, client, logger)
	reportRouter.RegisterRoutes(authenticated, client, deps.Clock, logger)
	seasonRouter.RegisterRoutes(authenticated, client, deps.Clock, logger)
	teamRouter.RegisterRoutes(authenticated, client, logger)
	rosterRouter.RegisterRoutes(authenticated, client, logger)

	return r
}

// corsMiddleware allows the browser front end on the configured origins.
// Without origins no CORS headers are sent.
func corsMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	if len(cfg.AllowOrigins) == 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           cfg.MaxAge,
	})
}
