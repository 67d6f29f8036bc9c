package gameservice

import (
	"context"
	"errors"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
)

// getGameReadAttempts bounds the re-read loop when a concurrent
// request performs the same deadline catch-up first.
const getGameReadAttempts = 3

// GetGame returns the current state of a game, performing the lazy
// deadline catch-up first. Reading twice with no time passing returns
// identical state.
func (s *GameService) GetGame(ctx context.Context, gameID gamedomain.GameID) (*gamedomain.Game, error) {
	return s.withTelemetry(ctx, "GetGame", gameID, func(ctx context.Context) (*gamedomain.Game, error) {
		var lastErr error
		for attempt := 0; attempt < getGameReadAttempts; attempt++ {
			game, err := s.repo.GetGame(ctx, gameID)
			if err != nil {
				return nil, err
			}
			result, err := s.applyLazyTimeout(ctx, game)
			if err != nil {
				// Losing the catch-up race on a pure read is not a
				// caller conflict: someone else committed the identical
				// transition. Re-read and serve their result.
				if errors.Is(err, gamedomain.ErrStateConflict) {
					lastErr = err
					continue
				}
				return nil, err
			}
			return result, nil
		}
		return nil, lastErr
	})
}

// ListActionLog returns the full append-only action log for a game in
// sequence order.
func (s *GameService) ListActionLog(ctx context.Context, gameID gamedomain.GameID) ([]gamedomain.ActionLogEntry, error) {
	if _, err := s.repo.GetGame(ctx, gameID); err != nil {
		return nil, err
	}
	return s.repo.ListLogEntries(ctx, gameID)
}

// loadCurrent loads a game and runs the lazy catch-up, for write paths
// that must observe post-timeout state before validating. A lost
// catch-up race surfaces as ErrStateConflict so the caller's request
// handler can retry against fresh state.
func (s *GameService) loadCurrent(ctx context.Context, gameID gamedomain.GameID) (*gamedomain.Game, error) {
	game, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return s.applyLazyTimeout(ctx, game)
}
