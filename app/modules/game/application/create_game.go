package gameservice

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
	gamedb "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/infrastructure/repositories"
)

// CreateGame creates a new game instance in the Open phase for the
// given variant. Admin only.
func (s *GameService) CreateGame(ctx context.Context, ident gamedomain.Identity, variant string) (*gamedomain.Game, error) {
	return s.withTelemetry(ctx, "CreateGame", uuid.Nil, func(ctx context.Context) (*gamedomain.Game, error) {
		if err := requireAdmin(ident); err != nil {
			return nil, err
		}
		policy, ok := s.variants[variant]
		if !ok {
			return nil, gamedomain.ErrUnknownVariant
		}

		now := s.now()
		game := &gamedomain.Game{
			ID:                  uuid.New(),
			Variant:             policy.Name,
			Status:              gamedomain.StatusOpen,
			SettlementThreshold: policy.SettlementThreshold,
			CreatedBy:           ident.ActorID,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		if err := s.repo.CreateGame(ctx, game); err != nil {
			return nil, err
		}

		s.logger.InfoContext(ctx, "Game created",
			slog.String("game_id", game.ID.String()),
			slog.String("variant", game.Variant),
		)
		return game, nil
	})
}

// Signup adds the caller to an Open game's participant pool. The pool
// is only consulted when the game starts.
func (s *GameService) Signup(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID) (*gamedomain.Game, error) {
	return s.withTelemetry(ctx, "Signup", gameID, func(ctx context.Context) (*gamedomain.Game, error) {
		game, err := s.repo.GetGame(ctx, gameID)
		if err != nil {
			return nil, err
		}
		if game.Status.Terminal() {
			return nil, gamedomain.ErrAlreadyTerminal
		}
		if game.Status != gamedomain.StatusOpen {
			return nil, gamedomain.ErrWrongPhase
		}

		if err := s.repo.AddSignup(ctx, gameID, ident.ActorID); err != nil {
			// A double signup is harmless; the pool already holds them.
			if errors.Is(err, gamedb.ErrDuplicateSignup) {
				return game, nil
			}
			return nil, err
		}
		return game, nil
	})
}
