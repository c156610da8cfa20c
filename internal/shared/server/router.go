package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillpath-backend/internal/shared/config"
	"skillpath-backend/internal/shared/health"
	"skillpath-backend/internal/shared/metrics"
	"skillpath-backend/internal/shared/server/middleware"
	"skillpath-backend/internal/shared/server/respond"
)

// RouteRegistrar is implemented by every feature handler.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries the handlers mounted under /api/v1. Nil handlers are skipped.
type RouterDeps struct {
	Config                 config.Config
	Health                 *health.Service
	RateLimiter            *middleware.RateLimiter
	CatalogHandler         RouteRegistrar
	LearningHandler        RouteRegistrar
	JobsHandler            RouteRegistrar
	MentorshipHandler      RouteRegistrar
	RecommendationsHandler RouteRegistrar
	ProfilesHandler        RouteRegistrar
	AccountHandler         RouteRegistrar
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:    middleware.DefaultRateLimitRules(),
			GroupFor: middleware.RateLimitGroupFor,
			Limiter:  deps.RateLimiter,
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		ok, checks := deps.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !ok {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, gin.H{"ok": ok, "checks": checks})
	})

	for _, h := range []RouteRegistrar{
		deps.CatalogHandler,
		deps.LearningHandler,
		deps.JobsHandler,
		deps.MentorshipHandler,
		deps.RecommendationsHandler,
		deps.ProfilesHandler,
		deps.AccountHandler,
	} {
		if h != nil {
			h.RegisterRoutes(api)
		}
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
