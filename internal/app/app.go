package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/go-playground/validator/v10"
	promclient "github.com/prometheus/client_golang/prometheus"
	redisClient "github.com/redis/go-redis/v9"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/handler/http"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/logger"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/memcache"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/memory"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/postgres"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/prometheus"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/redis"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/userservice"
	"github.com/sm8ta/webike_wear_microservice/internal/catalog"
	"github.com/sm8ta/webike_wear_microservice/internal/config"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
	"github.com/sm8ta/webike_wear_microservice/internal/core/services"
)

type App struct {
	Config      *config.Container
	Logger      ports.LoggerPort
	DB          *sql.DB
	RedisClient *redisClient.Client
	Cache       ports.CachePort
	HTTPRouter  *http.Router
	server      *stdhttp.Server
}

// NewStore opens the storage backend selected by STORAGE_DRIVER. db is nil
// for the in-memory store, which starts with the default catalog.
func NewStore(ctx context.Context, cfg *config.Container, log ports.LoggerPort) (ports.Store, *sql.DB, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := postgres.Open(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(db, cfg.DB.MigrationsDir); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgres.NewStore(db), db, nil

	case config.StorageMemory:
		store := memory.NewStore()
		catalogService := services.NewCatalogService(store, log, validator.New())
		if _, _, err := catalogService.ImportComponentTypes(ctx, catalog.Default()); err != nil {
			return nil, nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
		log.Warn("Using in-memory storage; data is lost on restart", nil)
		return store, nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func newCache(ctx context.Context, cfg *config.Redis) (ports.CachePort, *redisClient.Client, error) {
	if cfg.Address == "" {
		return memcache.NewCacheAdapter(cfg.TTL, 2*cfg.TTL), nil, nil
	}

	redisConn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if _, err := redisConn.Ping(ctx).Result(); err != nil {
		redisConn.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return redis.NewRedisAdapter(redisConn), redisConn, nil
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app":     cfg.App.Name,
		"env":     cfg.App.Env,
		"storage": cfg.Storage.Driver,
	})

	if cfg.Token.Secret == "" {
		return nil, errors.New("TOKEN_SECRET is required")
	}

	// Storage
	store, db, err := NewStore(ctx, cfg, loggerAdapter)
	if err != nil {
		return nil, err
	}

	// Cache
	cacheAdapter, redisConn, err := newCache(ctx, cfg.Redis)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, err
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter(promclient.DefaultRegisterer)

	// Services
	bikeService := services.NewBikeService(store, loggerAdapter, validate, cacheAdapter, cfg.Redis.TTL)
	componentService := services.NewComponentService(store, loggerAdapter, validate, cacheAdapter, metrics)
	catalogService := services.NewCatalogService(store, loggerAdapter, validate)
	garageService := services.NewGarageService(store, loggerAdapter)

	// User service client init
	userClient := userservice.NewClient(cfg.UserService.Address, loggerAdapter)

	// HTTP Handlers
	tokenService := http.NewJWTTokenService(cfg.Token.Secret, loggerAdapter)
	bikeHandler := http.NewBikeHandler(bikeService, loggerAdapter, metrics, userClient)
	componentHandler := http.NewComponentHandler(componentService, bikeService, loggerAdapter, metrics)
	catalogHandler := http.NewCatalogHandler(catalogService, loggerAdapter, metrics)
	garageHandler := http.NewGarageHandler(garageService, loggerAdapter, metrics)
	limiter := http.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		tokenService,
		limiter,
		nil,
		bikeHandler,
		componentHandler,
		catalogHandler,
		garageHandler,
	)
	if err != nil {
		if db != nil {
			db.Close()
		}
		cacheAdapter.Close()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:      cfg,
		Logger:      loggerAdapter,
		DB:          db,
		RedisClient: redisConn,
		Cache:       cacheAdapter,
		HTTPRouter:  router,
		server: &stdhttp.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.HTTP.URL, cfg.HTTP.Port),
			Handler:           router.Engine(),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run starts the HTTP server in the background. Serve errors are logged.
func (a *App) Run() {
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": a.server.Addr,
	})

	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			a.Logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()
}

// Stop drains in-flight requests, then closes storage and cache.
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	var errs []error
	if err := a.server.Shutdown(ctx); err != nil {
		a.Logger.Error("HTTP server shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
		errs = append(errs, err)
	}

	// Close database
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error("Database close error", map[string]interface{}{
				"error": err.Error(),
			})
			errs = append(errs, err)
		}
	}

	// Close cache (and the Redis connection behind it)
	if err := a.Cache.Close(); err != nil {
		a.Logger.Error("Cache close error", map[string]interface{}{
			"error": err.Error(),
		})
		errs = append(errs, err)
	}

	a.Logger.Info("Application stopped", nil)
	_ = a.Logger.Sync()
	return errors.Join(errs...)
}
