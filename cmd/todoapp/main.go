package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MassterJoe/developersFoundryAssignments/internal/auth"
	"github.com/MassterJoe/developersFoundryAssignments/internal/config"
	"github.com/MassterJoe/developersFoundryAssignments/internal/database"
	"github.com/MassterJoe/developersFoundryAssignments/internal/handlers"
	"github.com/MassterJoe/developersFoundryAssignments/internal/logger"
	"github.com/MassterJoe/developersFoundryAssignments/internal/middleware"
	appredis "github.com/MassterJoe/developersFoundryAssignments/internal/redis"
	"github.com/MassterJoe/developersFoundryAssignments/internal/service"
	"github.com/MassterJoe/developersFoundryAssignments/internal/storage"
)

func main() {
	log := logger.New("todoapp")
	log.SetStdLog()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	db, err := database.New(ctx, database.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}

	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TokenTTL)

	userStore := storage.NewPostgresUserStore(db)
	taskStore := storage.NewPostgresTaskStore(db)

	userService := service.NewUserService(userStore, taskStore, jwtManager)
	taskService := service.NewTaskService(taskStore)

	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	swaggerHandler := handlers.NewSwaggerHandler("api/openapi.yaml")
	authMW := middleware.NewAuthMiddleware(jwtManager)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/register", userHandler.Register)
	mux.HandleFunc("/api/users/login", userHandler.Login)
	mux.HandleFunc("/api/users/profile", authMW.RequireAuth(userHandler.Profile))
	mux.HandleFunc("/api/tasks", authMW.RequireAuth(taskHandler.Collection))
	mux.HandleFunc("/api/tasks/", authMW.RequireAuth(taskHandler.Item))
	swaggerHandler.RegisterRoutes(mux)

	var handler http.Handler = mux

	// Rate limiting only runs when redis is configured.
	if cfg.Redis.Addr != "" {
		redisClient, err := appredis.NewClient(ctx, appredis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()

		limiter := middleware.NewRateLimiter(redisClient.Unwrap(), cfg.RateLimit.Requests, cfg.RateLimit.Window)
		handler = limiter.Middleware(handler)
	}

	handler = middleware.CORS(handler)
	handler = middleware.RequestLogger(log, handler)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: handler,
	}

	go func() {
		log.Info("Server started on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown error: %v", err)
	}

	log.Info("Server stopped")
}
