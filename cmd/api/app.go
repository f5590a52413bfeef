package main

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"pointboard/docs"
	"pointboard/internal/config"
	"pointboard/internal/database"
	"pointboard/internal/database/schema"
	handlers "pointboard/internal/http/handler"
	"pointboard/internal/http/middleware"
	"pointboard/internal/repository/sqlstore"
	"pointboard/internal/seed"
	"pointboard/internal/service"
	"pointboard/internal/storage"
	"pointboard/internal/validation"
)

// application is the fully wired server and the resources it owns.
type application struct {
	app *fiber.App
	db  *sql.DB
}

func (a *application) Close() error {
	return a.db.Close()
}

// buildApp opens the database, prepares the schema, applies the optional seed
// and registers every route and middleware.
func buildApp(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger, reg *prometheus.Registry) (*application, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	a := &application{db: db}

	if err := schema.Ensure(ctx, db, cfg.Database.Driver, logger); err != nil {
		a.Close()
		return nil, err
	}

	points := sqlstore.NewPointStore(db)
	comments := sqlstore.NewCommentStore(db)
	v := validation.New()

	if cfg.SeedFile != "" {
		f, err := seed.LoadFile(cfg.SeedFile)
		if err == nil {
			err = seed.NewLoader(points, comments, v, logger).Apply(ctx, f)
		}
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("seed %s: %w", cfg.SeedFile, err)
		}
	}

	svc := handlers.Services{
		Points:   service.NewPointService(points, comments, v),
		Comments: service.NewCommentService(comments, v),
	}
	if cfg.MinIO.Enabled() {
		objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("initialize object storage: %w", err)
		}
		svc.Snapshots = service.NewSnapshotService(objStore, points, comments, cfg.SnapshotURLExpiry)
		logger.Info("snapshots enabled", zap.String("bucket", cfg.MinIO.Bucket))
	} else {
		logger.Info("object storage not configured, snapshots disabled")
	}

	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: cfg.IsProduction(),
	})

	app.Use(cors.New())
	app.Use(otelfiber.Middleware())
	app.Use(prom.Handler())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	handlers.RegisterRoutes(app, db, svc)

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

	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
		index := filepath.Join(cfg.StaticDir, "index.html")
		app.Get("/*", func(c *fiber.Ctx) error {
			if strings.HasPrefix(c.Path(), "/api/") {
				return fiber.ErrNotFound
			}
			return c.SendFile(index)
		})
	}

	a.app = app
	return a, nil
}
