package gameservice

import (
	"context"
	"errors"
	"log/slog"
	"time"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
)

// Sweep touches every InProgress game once, forcing the lazy deadline
// check. It is a pure availability optimization: games with no readers
// still resolve their expired turns eventually instead of on the next
// organic request. Correctness never depends on it running.
func (s *GameService) Sweep(ctx context.Context) error {
	ids, err := s.repo.ListGamesByStatus(ctx, gamedomain.StatusInProgress)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := s.GetGame(ctx, id); err != nil {
			// A conflict just means an organic request got there first.
			if errors.Is(err, gamedomain.ErrStateConflict) {
				continue
			}
			s.logger.WarnContext(ctx, "Sweep failed for game",
				slog.String("game_id", id.String()),
				slog.Any("error", err),
			)
		}
	}
	return nil
}

// RunSweeper runs Sweep on the given interval until ctx is cancelled.
func (s *GameService) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				s.logger.ErrorContext(ctx, "Sweep pass failed", slog.Any("error", err))
			}
		}
	}
}
