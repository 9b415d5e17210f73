package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nameapi/docs"
	"nameapi/internal/config"
	"nameapi/internal/database"
	"nameapi/internal/database/migration"
	handlers "nameapi/internal/http/handler"
	"nameapi/internal/http/middleware"
	"nameapi/internal/logging"
	"nameapi/internal/otel"
	"nameapi/internal/repository"
	"nameapi/internal/repository/memory"
	"nameapi/internal/repository/postgres"
	"nameapi/internal/service"
	"nameapi/internal/storage"
)

// @title Name API
// @version 1.0
// @description CRUD API for first name / last name records.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.Location())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		fatal(log, "tracing_init_failed", err)
	}

	// Record store: in-memory by default, PostgreSQL when configured
	var (
		repo   repository.NameRepository
		pinger handlers.Pinger
		db     *sql.DB
	)
	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			fatal(log, "database_connect_failed", err)
		}
		if cfg.Database.AutoMigrate {
			if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
				fatal(log, "migration_failed", err)
			}
		}
		repo = postgres.NewNamePostgres(db)
		pinger = db
	case config.StoreMemory:
		repo, err = memory.NewNameMemory()
		if err != nil {
			fatal(log, "store_init_failed", err)
		}
	default:
		fatal(log, "store_init_failed", errors.New("unknown STORE_DRIVER "+cfg.StoreDriver))
	}
	log.Info("store_ready", logging.Fields{"driver": cfg.StoreDriver})

	// Snapshots stay disabled unless an S3-compatible endpoint is configured
	var objStore storage.Storage
	if storage.Enabled(cfg.MinIO) {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			fatal(log, "object_storage_init_failed", err)
		}
	}
	log.Info("snapshots_configured", logging.Fields{"snapshots_enabled": objStore != nil})

	nameSvc := service.NewNameService(repo)
	snapshotSvc := service.NewSnapshotService(objStore, repo)

	app := fiber.New(fiber.Config{
		Immutable:    true,
		Views:        handlers.NewViews(),
		ErrorHandler: handlers.ErrorHandler(),
	})

	metrics, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		fatal(log, "metrics_init_failed", err)
	}

	// Register global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSAllowOrigins}))
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(log))
	app.Use(metrics.Handler())
	app.Use(otelfiber.Middleware())

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:        pinger,
		Names:     nameSvc,
		Snapshots: snapshotSvc,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	go func() {
		log.Info("server_starting", logging.Fields{"addr": addr})
		if err := app.Listen(addr); err != nil {
			log.Error("server_stopped", err, nil)
			stop()
		}
	}()

	<-ctx.Done()

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("server_shutdown_failed", err, nil)
	}
	if db != nil {
		_ = db.Close()
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		log.Error("tracing_shutdown_failed", err, nil)
	}
	log.Info("server_stopped", nil)
}

func fatal(log *logging.Logger, msg string, err error) {
	log.Error(msg, err, nil)
	os.Exit(1)
}
