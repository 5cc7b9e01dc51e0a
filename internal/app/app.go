package app

import (
	"context"
	"database/sql"
	"fmt"

	httphandler "github.com/pageland/matrix-bike-service/internal/adapter/handler/http"
	"github.com/pageland/matrix-bike-service/internal/adapter/logger"
	"github.com/pageland/matrix-bike-service/internal/adapter/memory"
	"github.com/pageland/matrix-bike-service/internal/adapter/postgres"
	"github.com/pageland/matrix-bike-service/internal/adapter/prometheus"
	"github.com/pageland/matrix-bike-service/internal/adapter/redis"
	"github.com/pageland/matrix-bike-service/internal/config"
	"github.com/pageland/matrix-bike-service/internal/core/ports"
	"github.com/pageland/matrix-bike-service/internal/core/services"

	"github.com/go-playground/validator/v10"
	"github.com/pressly/goose"
	redisClient "github.com/redis/go-redis/v9"
)

// App wires every component explicitly: one repository, one cache, one
// service, one handler, one router. Nothing is discovered at runtime.
type App struct {
	Config       *config.Container
	Logger       ports.LoggerPort
	DB           *sql.DB
	RedisClient  *redisClient.Client
	CacheAdapter ports.CachePort
	HTTPRouter   *httphandler.Router
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Cache: redis when configured, in-process otherwise
	var cacheAdapter ports.CachePort
	var redisConn *redisClient.Client
	if cfg.Redis.Address != "" {
		redisConn = redisClient.NewClient(&redisClient.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if _, err := redisConn.Ping(ctx).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		cacheAdapter = redis.NewRedisAdapter(redisConn)
	} else {
		loggerAdapter.Warn("REDIS_ADDRESS not set, using in-process cache", nil)
		cacheAdapter = memory.NewCache()
	}

	// Store: postgres when configured, in-memory otherwise
	var bikeRepo ports.BikeRepository
	var db *sql.DB
	if cfg.DB.Host != "" {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
		var err error
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := db.Ping(); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}

		// Migrate DB
		if err := goose.Up(db, "./internal/adapter/postgres/migrations"); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		bikeRepo = postgres.NewBikeRepository(db)
	} else {
		loggerAdapter.Warn("DB_HOST not set, using in-memory bike store", nil)
		bikeRepo = memory.NewBikeRepository()
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Services
	bikeService := services.NewBikeService(bikeRepo, loggerAdapter, validate, cacheAdapter)
	emailService := services.NewEmailService()

	// HTTP Handlers
	bikeHandler := httphandler.NewBikeHandler(bikeService, emailService, loggerAdapter, metrics)

	// Init HTTP router
	router, err := httphandler.NewRouter(cfg.HTTP, bikeHandler)
	if err != nil {
		if db != nil {
			db.Close()
		}
		if redisConn != nil {
			redisConn.Close()
		}
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:       cfg,
		Logger:       loggerAdapter,
		DB:           db,
		RedisClient:  redisConn,
		CacheAdapter: cacheAdapter,
		HTTPRouter:   router,
	}, nil
}

// Runs all services
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error("Database close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Logger.Error("Redis close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}
