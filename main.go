package main

import (
	"log"
	"log/slog"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"

	"github.com/Ramakrishnajakkula/SPC-backend/config"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/handler"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/logger"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/middleware"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/notification"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/repository"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/service"
	"github.com/Ramakrishnajakkula/SPC-backend/pkg/cache"
	"github.com/Ramakrishnajakkula/SPC-backend/pkg/database"
	"github.com/Ramakrishnajakkula/SPC-backend/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()
	logger.Setup(cfg.Env)

	db := database.NewPostgresDB(cfg.DSN())

	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer p.Close()
		publisher = p
	} else {
		slog.Warn("RABBITMQ_URL not set, event publishing disabled")
	}

	var statsCache *cache.Client
	if cfg.RedisAddr != "" {
		c, err := cache.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.StatsCacheTTL)
		if err != nil {
			log.Fatalf("failed to connect to Redis: %v", err)
		}
		defer c.Close()
		statsCache = c
	} else {
		slog.Warn("REDIS_ADDR not set, stats caching disabled")
	}

	notifier, err := notification.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Fatalf("failed to init telegram notifier: %v", err)
	}

	hackRepo := repository.NewHackathonRepository(db)
	regRepo := repository.NewRegistrationRepository(db)

	hackSvc := service.NewHackathonService(hackRepo, publisher)
	regSvc := service.NewRegistrationService(regRepo, hackRepo, publisher, statsCache, notifier, cfg.AutoConfirm)

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			slog.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(middleware.Identity())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "hackathon-api"})
	})

	api := e.Group("/api/v1/hackathons")
	handler.NewHackathonHandler(hackSvc).RegisterRoutes(api)
	handler.NewRegistrationHandler(regSvc).RegisterRoutes(e)

	slog.Info("Hackathon API starting", "port", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
