package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/Black-And-White-Club/gauntlet-bot/api/handlers"
	"github.com/Black-And-White-Club/gauntlet-bot/app/modules/game"
	"github.com/Black-And-White-Club/gauntlet-bot/config"
	"github.com/Black-And-White-Club/gauntlet-bot/db/bundb"
	"github.com/Black-And-White-Club/gauntlet-bot/eventbus"
)

// App wires the game module to its transports.
type App struct {
	Cfg        *config.Config
	GameModule *game.Module
	Router     chi.Router

	logger    *slog.Logger
	db        *bundb.DBService
	publisher message.Publisher
	registry  *prometheus.Registry
	wg        sync.WaitGroup
}

// NewApp initializes the application with the necessary services and
// configuration.
func NewApp(cfg *config.Config) (*App, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dbService, err := bundb.NewBunDBService(cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	publisher, err := eventbus.NewPublisher(cfg.NATS.URL, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	gameModule, err := game.NewGameModule(
		cfg,
		logger,
		dbService.GameDB,
		publisher,
		registry,
		otel.Tracer("gauntlet-bot"),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize game module: %w", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Mount("/games", handlers.NewGameHandler(gameModule.GameService).Routes())

	return &App{
		Cfg:        cfg,
		GameModule: gameModule,
		Router:     router,
		logger:     logger,
		db:         dbService,
		publisher:  publisher,
		registry:   registry,
	}, nil
}

// Run starts the HTTP listeners and the module's background work, and
// blocks until ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		app.GameModule.Run(ctx, &app.wg)
	}()

	if app.Cfg.Metrics.Address != "" {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))
		metricsServer := &http.Server{Addr: app.Cfg.Metrics.Address, Handler: metricsMux}
		app.wg.Add(1)
		go func() {
			defer app.wg.Done()
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				app.logger.Error("Metrics server failed", slog.Any("error", err))
			}
		}()
		go func() {
			<-ctx.Done()
			_ = metricsServer.Close()
		}()
	}

	apiServer := &http.Server{Addr: app.Cfg.HTTP.Address, Handler: app.Router}
	go func() {
		<-ctx.Done()
		_ = apiServer.Close()
	}()

	app.logger.Info("API listening", slog.String("address", app.Cfg.HTTP.Address))
	if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	app.wg.Wait()
	return nil
}

// Close releases the application's external connections.
func (app *App) Close() error {
	if err := app.GameModule.Close(); err != nil {
		app.logger.Error("Failed to close game module", slog.Any("error", err))
	}
	if err := app.publisher.Close(); err != nil {
		app.logger.Error("Failed to close publisher", slog.Any("error", err))
	}
	return app.db.GetDB().Close()
}

// DB returns the database service.
func (app *App) DB() *bundb.DBService {
	return app.db
}
