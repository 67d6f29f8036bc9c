package gameservice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
	gamedb "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/infrastructure/repositories"
)

// EligibilityFn is the externally supplied predicate consulted when a
// game starts, to filter the signup pool. The orchestrator treats it
// as a black box.
type EligibilityFn func(ctx context.Context, participantID gamedomain.ParticipantID) bool

// GameService is the lifecycle controller. It holds no game state
// between requests; every operation reloads the game from the store,
// validates the transition, and commits through a conditional write.
type GameService struct {
	repo        gamedb.Repository
	publisher   message.Publisher
	variants    map[string]gamedomain.VariantPolicy
	eligibility EligibilityFn
	logger      *slog.Logger
	metrics     *Metrics
	tracer      trace.Tracer
	limiter     *rate.Limiter

	// now is swappable for deterministic deadline tests.
	now func() time.Time
}

// NewGameService creates a new GameService. variants must hold every
// policy games may reference; eligibility may be nil, in which case
// every signup is eligible.
func NewGameService(
	repo gamedb.Repository,
	publisher message.Publisher,
	variants map[string]gamedomain.VariantPolicy,
	eligibility EligibilityFn,
	logger *slog.Logger,
	metrics *Metrics,
	tracer trace.Tracer,
) *GameService {
	return &GameService{
		repo:        repo,
		publisher:   publisher,
		variants:    variants,
		eligibility: eligibility,
		logger:      logger,
		metrics:     metrics,
		tracer:      tracer,
		limiter:     rate.NewLimiter(rate.Limit(50), 100),
		now:         time.Now,
	}
}

// operationFunc is the signature for service operation functions.
type operationFunc func(ctx context.Context) (*gamedomain.Game, error)

// withTelemetry wraps a service operation with tracing, metrics, and
// panic recovery so observability is uniform across operations.
func (s *GameService) withTelemetry(
	ctx context.Context,
	operationName string,
	gameID gamedomain.GameID,
	op operationFunc,
) (game *gamedomain.Game, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("game_id", gameID.String()),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(operationName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			// A dead entropy source must kill the process, not degrade
			// into a per-call error.
			if _, fatal := r.(gamedomain.EntropyFailure); fatal {
				panic(r)
			}
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				slog.String("operation", operationName),
				slog.String("game_id", gameID.String()),
				slog.Any("error", err),
			)
			s.metrics.RecordOperationFailure(operationName)
			span.RecordError(err)
			game = nil
		}
	}()

	game, err = op(ctx)
	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed",
			slog.String("operation", operationName),
			slog.String("game_id", gameID.String()),
			slog.Any("error", wrappedErr),
		)
		s.metrics.RecordOperationFailure(operationName)
		span.RecordError(wrappedErr)
		return game, wrappedErr
	}

	return game, nil
}

// policyFor resolves the variant policy a game was registered with.
func (s *GameService) policyFor(g *gamedomain.Game) (gamedomain.VariantPolicy, error) {
	policy, ok := s.variants[g.Variant]
	if !ok {
		return gamedomain.VariantPolicy{}, fmt.Errorf("%w: %q", gamedomain.ErrUnknownVariant, g.Variant)
	}
	return policy, nil
}

// appendEntry reserves the next log sequence on the working copy and
// returns the entry. The reservation only becomes real when the
// conditional write carrying g.LastSequence commits.
func (s *GameService) appendEntry(g *gamedomain.Game, actor gamedomain.ParticipantID, action gamedomain.ActionType, target gamedomain.ParticipantID) gamedomain.ActionLogEntry {
	g.LastSequence++
	return gamedomain.ActionLogEntry{
		GameID:    g.ID,
		Sequence:  g.LastSequence,
		ActorID:   actor,
		Action:    action,
		TargetID:  target,
		Timestamp: s.now(),
	}
}

// commit writes the working copy and its reserved log entries in one
// conditional transaction keyed on the version the caller observed. A
// store failure leaves nothing behind; a lost race surfaces as
// ErrStateConflict, and the orchestrator never retries it silently, so
// double submissions stay visible to callers.
func (s *GameService) commit(ctx context.Context, updated *gamedomain.Game, observedVersion int64, entries []gamedomain.ActionLogEntry) error {
	updated.Version = observedVersion + 1
	updated.UpdatedAt = s.now()

	applied, err := s.repo.CommitTransition(ctx, updated, observedVersion, entries)
	if err != nil {
		return fmt.Errorf("conditional commit failed: %w", err)
	}
	if !applied {
		s.metrics.RecordConflict()
		return gamedomain.ErrStateConflict
	}
	return nil
}

// publishEvent publishes a notification best-effort. Failures are
// logged and swallowed; notification is not part of the game's
// correctness contract and never rolls back a committed transition.
func (s *GameService) publishEvent(ctx context.Context, subject string, payload any) {
	if s.publisher == nil {
		return
	}
	if !s.limiter.Allow() {
		s.metrics.RecordEventDropped()
		s.logger.WarnContext(ctx, "Notification dropped by rate limiter", slog.String("subject", subject))
		return
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to marshal event payload",
			slog.String("subject", subject),
			slog.Any("error", err),
		)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payloadBytes)
	if err := s.publisher.Publish(subject, msg); err != nil {
		s.metrics.RecordEventDropped()
		s.logger.ErrorContext(ctx, "Failed to publish event",
			slog.String("subject", subject),
			slog.String("message_id", msg.UUID),
			slog.Any("error", err),
		)
	}
}

func requireAdmin(ident gamedomain.Identity) error {
	if !ident.IsAdmin {
		return gamedomain.ErrNotAdmin
	}
	return nil
}
