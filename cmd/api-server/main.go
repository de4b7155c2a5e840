package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"swappochat/database"
	"swappochat/internal/config"
	"swappochat/internal/http-api/handler"
	"swappochat/internal/http-api/middleware"
	"swappochat/internal/http-api/repository"
	"swappochat/internal/http-api/service"
	"swappochat/internal/notifier"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	rdb := database.ConnectRedis(cfg, logger)

	// Repositories
	roomRepo := repository.NewChatRoomRepository(db)
	msgRepo := repository.NewMessageRepository(db)

	// Notification dispatch
	notifyClient := notifier.NewClient(
		cfg.NotificationServiceURL,
		cfg.NotificationTimeout,
		notifier.DefaultRetryPolicy(),
		notifier.LogObserver{},
	)
	messageNotifier := notifier.New(notifyClient)

	// Services
	roomService := service.NewChatRoomService(roomRepo, msgRepo)
	messageService := service.NewMessageService(roomRepo, msgRepo, messageNotifier)
	statsService := service.NewStatisticsService(roomRepo, msgRepo, rdb, time.Duration(cfg.CacheTTL)*time.Second)

	// Router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	handler.NewHealthHandler().RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		handler.NewChatRoomHandler(roomService).RegisterRoutes(api)
		handler.NewMessageHandler(messageService).RegisterRoutes(api)
		handler.NewStatisticsHandler(statsService).RegisterRoutes(api)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:           addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	logger.Info("Starting Swappo Chat Service", "addr", addr)
	if err := server.ListenAndServe(); err != nil {
		logger.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	switch cfg.LogLevel {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error", "fatal", "panic":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
