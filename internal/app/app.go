package app

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/rohithkumar4855/smartposBillingSystem/internal/config"
	"github.com/rohithkumar4855/smartposBillingSystem/internal/db"
	httpdelivery "github.com/rohithkumar4855/smartposBillingSystem/internal/delivery/http"
	"github.com/rohithkumar4855/smartposBillingSystem/internal/delivery/middleware"
	"github.com/rohithkumar4855/smartposBillingSystem/pkg/metrics"
)

type App struct {
	f   *fiber.App
	cfg config.Config
}

func New() *App {
	cfg := config.Load()

	pool, err := db.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	f := fiber.New(fiber.Config{
		AppName: "smartpos-billing-system",
	})

	f.Use(recover.New())
	f.Use(logger.New())
	f.Use(cors.New())

	m := metrics.NewServerMetrics("api")
	f.Use(middleware.RecordMetrics(m))

	f.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	f.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	httpdelivery.RegisterRoutes(f, cfg, pool, rdb)

	return &App{f: f, cfg: cfg}
}

func (a *App) Run() error {
	return a.f.Listen(":" + a.cfg.Port)
}
