package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	gameservice "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/application"
	gamedb "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/infrastructure/repositories"
	"github.com/Black-And-White-Club/gauntlet-bot/config"
)

// Module represents the game module.
type Module struct {
	GameService gameservice.Service

	service    *gameservice.GameService
	logger     *slog.Logger
	config     *config.Config
	cancelFunc context.CancelFunc
}

// NewGameModule creates a new instance of the game module.
func NewGameModule(
	cfg *config.Config,
	logger *slog.Logger,
	gameDB gamedb.Repository,
	publisher message.Publisher,
	registerer prometheus.Registerer,
	tracer trace.Tracer,
	eligibility gameservice.EligibilityFn,
) (*Module, error) {
	variants, err := cfg.ResolveVariants()
	if err != nil {
		return nil, err
	}

	svc := gameservice.NewGameService(
		gameDB,
		publisher,
		variants,
		eligibility,
		logger,
		gameservice.NewMetrics(registerer),
		tracer,
	)

	return &Module{
		GameService: svc,
		service:     svc,
		logger:      logger,
		config:      cfg,
	}, nil
}

// Run keeps the deadline sweeper going until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.Info("Starting game module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	wg.Add(1)
	go func() {
		defer wg.Done()
		m.service.RunSweeper(ctx, m.config.Sweep.Interval)
	}()

	<-ctx.Done()
	m.logger.Info("Game module goroutine stopped")
}

// Close stops the module's background work.
func (m *Module) Close() error {
	m.logger.Info("Stopping game module")
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.logger.Info("Game module stopped")
	return nil
}
