package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	redisClient "github.com/redis/go-redis/v9"

	handlers "github.com/sangam/bloodbank/internal/adapter/handler/http"
	"github.com/sangam/bloodbank/internal/adapter/logger"
	"github.com/sangam/bloodbank/internal/adapter/postgres/repository"
	"github.com/sangam/bloodbank/internal/adapter/prometheus"
	redis "github.com/sangam/bloodbank/internal/adapter/redis"
	"github.com/sangam/bloodbank/internal/config"
	"github.com/sangam/bloodbank/internal/core/services"
)

func main() {
	// Loading environment
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Set redis
	redisConn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx := context.Background()
	if _, err := redisConn.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Connect DB
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: ", err)
	}

	// Migrate DB
	if err := goose.Up(db, "./internal/adapter/postgres/migrations"); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// Cache / session store
	cacheAdapter := redis.NewRedisAdapter(redisConn)

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	donorRepo := repository.NewDonorRepository(db)

	// Services
	sessionService := handlers.NewSessionTokenService(cfg.Session.Secret, cfg.Session.Duration, cacheAdapter, loggerAdapter)
	authService := services.NewAuthService(userRepo, sessionService, loggerAdapter, cacheAdapter)
	userService := services.NewUserService(userRepo, loggerAdapter, validate)
	donorService := services.NewDonorService(donorRepo, loggerAdapter)

	// Handlers
	pageHandler := handlers.NewPageHandler(loggerAdapter, metrics)
	authHandler := handlers.NewAuthHandler(authService, sessionService, loggerAdapter, metrics)
	userHandler := handlers.NewUserHandler(userService, loggerAdapter, metrics)
	donorHandler := handlers.NewDonorHandler(donorService, loggerAdapter, metrics)

	// Init router
	router, err := handlers.NewRouter(
		cfg.HTTP,
		sessionService,
		pageHandler,
		userHandler,
		authHandler,
		donorHandler,
	)
	if err != nil {
		log.Fatal("Error initializing router:", err)
	}

	go func() {
		listenAddr := fmt.Sprintf("%s:%s", cfg.HTTP.URL, cfg.HTTP.Port)
		loggerAdapter.Info("Starting the HTTP server", map[string]interface{}{
			"addr": listenAddr,
		})

		if err := router.Serve(listenAddr); err != nil {
			log.Fatal("Error starting the HTTP server:", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	loggerAdapter.Info("Application is running", nil)

	<-stop

	if err := redisConn.Close(); err != nil {
		loggerAdapter.Warn("Failed to close redis connection", map[string]interface{}{
			"error": err.Error(),
		})
	}

	loggerAdapter.Info("Application stopped", nil)
}
