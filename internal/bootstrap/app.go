package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"skillpath-backend/internal/account"
	"skillpath-backend/internal/catalog"
	"skillpath-backend/internal/jobs"
	"skillpath-backend/internal/learning"
	"skillpath-backend/internal/mentorship"
	"skillpath-backend/internal/profiles"
	"skillpath-backend/internal/recommendations"
	"skillpath-backend/internal/shared/config"
	"skillpath-backend/internal/shared/health"
	"skillpath-backend/internal/shared/scoring"
	"skillpath-backend/internal/shared/server"
	"skillpath-backend/internal/shared/storage/db"
	"skillpath-backend/internal/shared/telemetry"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Redis  *redis.Client

	CatalogRepo         catalog.Repo
	LearningRepo        learning.Repo
	JobsRepo            jobs.Repo
	MentorshipRepo      mentorship.Repo
	RecommendationsRepo recommendations.Repo
	ProfilesRepo        profiles.Repo

	CatalogService         *catalog.Service
	LearningService        *learning.Service
	JobsService            *jobs.Service
	MentorshipService      *mentorship.Service
	RecommendationsService *recommendations.Service
	ProfilesService        *profiles.Service
	AccountService         *account.Service
	HealthService          *health.Service
}

// Build connects storage, wires services and handlers, and builds the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if sqlDB != nil && cfg.RunMigrations {
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Redis:  buildRedis(ctx, cfg),
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:                 app.Config,
		Health:                 app.HealthService,
		CatalogHandler:         catalog.NewHandler(app.CatalogService),
		LearningHandler:        learning.NewHandler(app.LearningService),
		JobsHandler:            jobs.NewHandler(app.JobsService),
		MentorshipHandler:      mentorship.NewHandler(app.MentorshipService),
		RecommendationsHandler: recommendations.NewHandler(app.RecommendationsService),
		ProfilesHandler:        profiles.NewHandler(app.ProfilesService),
		AccountHandler:         account.NewHandler(app.AccountService),
	})
	return app, nil
}

// Close releases pooled connections.
func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.db.memory", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, errors.New("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.db.memory", map[string]any{"reason": "connect failed", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

// buildRedis returns nil when no address is configured or the server is unreachable.
func buildRedis(ctx context.Context, cfg config.Config) *redis.Client {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		telemetry.Warn("bootstrap.redis.disabled", map[string]any{"addr": cfg.RedisAddr, "error": err.Error()})
		_ = client.Close()
		return nil
	}
	return client
}

func buildServices(app *App) {
	var (
		catalogRepo  catalog.Repo
		learningRepo learning.Repo
		jobsRepo     jobs.Repo
		mentorRepo   mentorship.Repo
		recRepo      recommendations.Repo
		profileRepo  profiles.Repo
		accountSvc   *account.Service
	)

	if app.DB != nil {
		catalogRepo = &catalog.PGRepo{DB: app.DB}
		learningRepo = &learning.PGRepo{DB: app.DB}
		jobsRepo = &jobs.PGRepo{DB: app.DB}
		mentorRepo = &mentorship.PGRepo{DB: app.DB}
		recRepo = &recommendations.PGRepo{DB: app.DB}
		profileRepo = &profiles.PGRepo{DB: app.DB}
		accountSvc = account.NewService(app.DB)
	} else {
		memCatalog := catalog.NewMemoryRepo()
		catalog.SeedDemo(memCatalog)
		memLearning := learning.NewMemoryRepo()
		memJobs := jobs.NewMemoryRepo()
		memMentorship := mentorship.NewMemoryRepo()
		memRecs := recommendations.NewMemoryRepo()

		catalogRepo = memCatalog
		learningRepo = memLearning
		jobsRepo = memJobs
		mentorRepo = memMentorship
		recRepo = memRecs
		profileRepo = profiles.NewMemoryRepo()
		accountSvc = account.NewService(nil, memLearning, memJobs, memMentorship, memRecs)
	}

	// Recommendation targets resolve against the backing repo so a deleted
	// catalog item never outlives its cache entry in a view.
	liveCatalog := catalogRepo
	if app.Redis != nil {
		catalogRepo = catalog.NewCachedRepo(catalogRepo, app.Redis, app.Config.CatalogCacheTTL)
	}

	scorer := scoring.NewRandom(0)
	recSvc := recommendations.NewService(
		recRepo,
		recommendations.NewGenerator(recRepo, learningRepo, liveCatalog, scorer),
		recommendations.NewEnricher(liveCatalog),
	)

	checks := map[string]health.Pinger{"database": nil, "cache": nil}
	if app.DB != nil {
		checks["database"] = app.DB
	}
	if app.Redis != nil {
		rdb := app.Redis
		checks["cache"] = health.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}

	app.CatalogRepo = catalogRepo
	app.LearningRepo = learningRepo
	app.JobsRepo = jobsRepo
	app.MentorshipRepo = mentorRepo
	app.RecommendationsRepo = recRepo
	app.ProfilesRepo = profileRepo

	app.CatalogService = catalog.NewService(catalogRepo)
	app.LearningService = learning.NewService(learningRepo, catalogRepo)
	app.JobsService = jobs.NewService(jobsRepo, catalogRepo, scorer)
	app.MentorshipService = mentorship.NewService(mentorRepo, catalogRepo)
	app.RecommendationsService = recSvc
	app.ProfilesService = profiles.NewService(profileRepo)
	app.AccountService = accountSvc
	app.HealthService = health.NewService(checks)
}
