package gameservice

import (
	"context"
	"log/slog"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
	gameevents "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/events"
)

// StartGame transitions an Open game to InProgress: the signup pool is
// filtered through the eligibility predicate, shuffled into the turn
// order, and the first holder's deadline starts ticking. Admin only.
func (s *GameService) StartGame(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID) (*gamedomain.Game, error) {
	return s.withTelemetry(ctx, "StartGame", gameID, func(ctx context.Context) (*gamedomain.Game, error) {
		if err := requireAdmin(ident); err != nil {
			return nil, err
		}

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

		policy, err := s.policyFor(game)
		if err != nil {
			return nil, err
		}

		signups, err := s.repo.ListSignups(ctx, gameID)
		if err != nil {
			return nil, err
		}
		pool := make([]gamedomain.ParticipantID, 0, len(signups))
		for _, p := range signups {
			if s.eligibility == nil || s.eligibility(ctx, p) {
				pool = append(pool, p)
			}
		}
		if len(pool) == 0 {
			return nil, gamedomain.ErrEmptyPool
		}

		work := game.Clone()
		work.TurnOrder = gamedomain.InitializeOrder(pool)
		work.Remaining = append([]gamedomain.ParticipantID(nil), work.TurnOrder...)
		work.Eliminated = nil
		work.CurrentHolder = work.TurnOrder[0]
		deadline := s.now().Add(policy.TurnWindow)
		work.TurnDeadline = &deadline
		work.Status = gamedomain.StatusInProgress

		if err := s.commit(ctx, work, game.Version, nil); err != nil {
			return nil, err
		}
		s.metrics.RecordTransition(string(gamedomain.ActionStart))

		s.logger.InfoContext(ctx, "Game started",
			slog.String("game_id", gameID.String()),
			slog.Int("participants", len(pool)),
			slog.String("first_holder", string(work.CurrentHolder)),
		)
		s.publishEvent(ctx, gameevents.GameStartedSubject, gameevents.GameStarted{
			GameID:      gameID,
			Variant:     work.Variant,
			TurnOrder:   work.TurnOrder,
			FirstHolder: work.CurrentHolder,
			Deadline:    deadline,
		})
		return work, nil
	})
}
