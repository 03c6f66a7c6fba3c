package main

import (
	"fmt"
	"os"

	"blog/internal/adapters/database"
	"blog/internal/adapters/health"
	httpAdapter "blog/internal/adapters/http"
	articleHandler "blog/internal/adapters/http/article"
	healthHttp "blog/internal/adapters/http/health"
	memoryRepo "blog/internal/adapters/repository/memory"
	postgresRepo "blog/internal/adapters/repository/postgres"
	sqliteRepo "blog/internal/adapters/repository/sqlite"
	"blog/internal/adapters/validator"
	"blog/internal/config"
	articleDomain "blog/internal/core/domain/article"
	"blog/internal/core/ports"
	articleUseCase "blog/internal/core/usecase/article"
	platformHealth "blog/internal/platform/health"
	"blog/internal/platform/logger"
	"blog/internal/platform/metrics"
	"blog/internal/platform/repository"
	"blog/internal/version"

	"go.uber.org/fx"
)

// storageHook starts and stops whichever store the selected module owns.
// It is appended before the HTTP server hook so requests never reach a closed store.
type storageHook fx.Hook

func main() {
	storage, err := config.LoadStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load storage configuration: %v\n", err)
		os.Exit(1)
	}

	fx.New(
		fx.Supply(storage),
		storageModule(storage.Driver),
		appModule,
	).Run()
}

func storageModule(driver string) fx.Option {
	switch driver {
	case config.DriverSQLite:
		return sqliteModule
	case config.DriverMemory:
		return memoryModule
	default:
		return postgresModule
	}
}

func asBackend(f any) any {
	return fx.Annotate(f, fx.As(new(ports.ArticleRepository)), fx.ResultTags(`name:"article_backend"`))
}

func asChecker(f any) any {
	return fx.Annotate(f, fx.As(new(platformHealth.Checker)), fx.ResultTags(`group:"health_checkers"`))
}

var postgresModule = fx.Module("postgres",
	fx.Provide(config.LoadDatabase),
	fx.Provide(database.NewDatabaseLifecycle),
	fx.Provide(asBackend(postgresRepo.NewRepository)),
	fx.Provide(asChecker(func(db *database.Lifecycle) *health.DatabaseChecker {
		return health.NewDatabaseChecker(db, config.DriverPostgres)
	})),
	fx.Provide(func(db *database.Lifecycle) storageHook {
		return storageHook{OnStart: db.Start, OnStop: db.Stop}
	}),
)

var sqliteModule = fx.Module("sqlite",
	fx.Provide(func(cfg *config.StorageConfig, log logger.Logger) *database.SQLiteLifecycle {
		return database.NewSQLiteLifecycle(&cfg.SQLite, log, sqliteRepo.Models()...)
	}),
	fx.Provide(asBackend(sqliteRepo.NewRepository)),
	fx.Provide(asChecker(func(db *database.SQLiteLifecycle) *health.DatabaseChecker {
		return health.NewDatabaseChecker(db, config.DriverSQLite)
	})),
	fx.Provide(func(db *database.SQLiteLifecycle) storageHook {
		return storageHook{OnStart: db.Start, OnStop: db.Stop}
	}),
)

var memoryModule = fx.Module("memory",
	fx.Provide(memoryRepo.NewRepository),
	fx.Provide(asBackend(func(r *memoryRepo.Repository) *memoryRepo.Repository { return r })),
	fx.Provide(asChecker(func(r *memoryRepo.Repository) *health.MemoryChecker {
		return health.NewMemoryChecker(r)
	})),
	fx.Provide(func() storageHook { return storageHook{} }),
)

var appModule = fx.Options(
	// Platform
	fx.Provide(config.LoadBase),
	fx.Provide(config.LoadHttp),
	fx.Provide(func(cfg *config.BaseConfig) logger.Config {
		return logger.Config{
			Environment: cfg.Environment,
			Service:     "blog",
			Level:       cfg.Logger.Level,
			Format:      cfg.Logger.Format,
		}
	}),
	fx.Provide(logger.NewZapLogger),
	fx.Provide(validator.NewPlaygroundAdapter),
	fx.Provide(metrics.NewProvider),

	// Health Checks
	fx.Provide(fx.Annotate(
		func(checkers []platformHealth.Checker) *platformHealth.Manager {
			m := platformHealth.NewManager()
			for _, checker := range checkers {
				m.Register(checker)
			}
			return m
		},
		fx.ParamTags(`group:"health_checkers"`),
		fx.As(new(platformHealth.ManagerInterface)),
	)),

	// Domain
	fx.Provide(fx.Annotate(
		func(backend ports.ArticleRepository, provider *metrics.Provider, storage *config.StorageConfig) ports.ArticleRepository {
			return repository.NewInstrumented[*articleDomain.Article, int64](backend, provider, "article", storage.Driver)
		},
		fx.ParamTags(`name:"article_backend"`),
	)),
	fx.Provide(fx.Annotate(articleUseCase.NewUsecase, fx.As(new(articleHandler.Manager)))),

	// HTTP Server
	fx.Provide(httpAdapter.NewServer),
	fx.Provide(httpAdapter.NewRouter),
	fx.Provide(articleHandler.NewHandler),
	fx.Provide(func() *healthHttp.LivenessHandler {
		return healthHttp.NewLivenessHandler(version.Get())
	}),
	fx.Provide(func(hm platformHealth.ManagerInterface) *healthHttp.ReadinessHandler {
		return healthHttp.NewReadinessHandler(version.Get(), hm)
	}),
	fx.Provide(func(cfg *config.HttpConfig, log logger.Logger, articles *articleHandler.Handler, liveness *healthHttp.LivenessHandler, readiness *healthHttp.ReadinessHandler, metrics *metrics.Provider) httpAdapter.RouterDependencies {
		return httpAdapter.RouterDependencies{
			Config:           cfg,
			Logger:           log,
			ArticleHandler:   articles,
			LivenessHandler:  liveness,
			ReadinessHandler: readiness,
			MetricsProvider:  metrics,
		}
	}),

	// Lifecycle Hooks
	fx.Invoke(func(lc fx.Lifecycle, log logger.Logger, storage *config.StorageConfig, store storageHook, srv *httpAdapter.Server) {
		log.Info("Starting blog service", append(version.Info().LogFields(), logger.String("storage", storage.Driver))...)

		lc.Append(fx.Hook(store))
		lc.Append(fx.Hook{
			OnStart: srv.Start,
			OnStop:  srv.Stop,
		})
	}),
)
