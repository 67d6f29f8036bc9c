package gameservice

import (
	"context"
	"log/slog"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
	gameevents "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/events"
)

// SkipTurn advances the rotation past the current holder without
// touching the remaining set. Admin only.
func (s *GameService) SkipTurn(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID) (*gamedomain.Game, error) {
	return s.withTelemetry(ctx, "SkipTurn", gameID, func(ctx context.Context) (*gamedomain.Game, error) {
		if err := requireAdmin(ident); err != nil {
			return nil, err
		}
		game, err := s.loadCurrent(ctx, gameID)
		if err != nil {
			return nil, err
		}
		if err := requireInProgress(game); err != nil {
			return nil, err
		}
		policy, err := s.policyFor(game)
		if err != nil {
			return nil, err
		}

		work := game.Clone()
		skipped := work.CurrentHolder
		next, err := gamedomain.NextAfter(work.TurnOrder, work.Remaining, skipped)
		if err != nil {
			return nil, err
		}
		entry := s.appendEntry(work, ident.ActorID, gamedomain.ActionSkip, skipped)
		work.CurrentHolder = next
		deadline := s.now().Add(policy.TurnWindow)
		work.TurnDeadline = &deadline

		if err := s.commit(ctx, work, game.Version, []gamedomain.ActionLogEntry{entry}); err != nil {
			return nil, err
		}
		s.metrics.RecordTransition(string(gamedomain.ActionSkip))

		s.publishEvent(ctx, gameevents.TurnAdvancedSubject, gameevents.TurnAdvanced{
			GameID:    gameID,
			NewHolder: next,
			Deadline:  deadline,
		})
		return work, nil
	})
}

// SpinRoulette eliminates a uniformly random remaining participant.
// When the elimination reaches the settlement threshold the game
// settles in the same transition. Admin only.
func (s *GameService) SpinRoulette(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID) (*gamedomain.Game, error) {
	return s.withTelemetry(ctx, "SpinRoulette", gameID, func(ctx context.Context) (*gamedomain.Game, error) {
		if err := requireAdmin(ident); err != nil {
			return nil, err
		}
		game, err := s.loadCurrent(ctx, gameID)
		if err != nil {
			return nil, err
		}
		if err := requireInProgress(game); err != nil {
			return nil, err
		}
		// At or below the threshold the game should already have
		// settled; nothing left to draw from.
		if len(game.Remaining) <= game.SettlementThreshold {
			return nil, gamedomain.ErrWrongPhase
		}
		policy, err := s.policyFor(game)
		if err != nil {
			return nil, err
		}

		work := game.Clone()
		remaining, victim, err := gamedomain.EliminateRandom(work.Remaining)
		if err != nil {
			return nil, err
		}
		work.Remaining = remaining
		work.Eliminated = append(work.Eliminated, victim)

		entries := []gamedomain.ActionLogEntry{
			s.appendEntry(work, ident.ActorID, gamedomain.ActionRoulette, victim),
		}

		settled := gamedomain.ShouldSettle(work.Remaining, work.SettlementThreshold)
		if settled {
			entries = append(entries, s.settle(work, gamedomain.SystemActor))
		} else if victim == work.CurrentHolder {
			next, err := gamedomain.NextAfter(work.TurnOrder, work.Remaining, victim)
			if err != nil {
				return nil, err
			}
			work.CurrentHolder = next
			deadline := s.now().Add(policy.TurnWindow)
			work.TurnDeadline = &deadline
		}

		if err := s.commit(ctx, work, game.Version, entries); err != nil {
			return nil, err
		}
		s.metrics.RecordTransition(string(gamedomain.ActionRoulette))

		s.logger.InfoContext(ctx, "Roulette eliminated participant",
			slog.String("game_id", gameID.String()),
			slog.String("eliminated", string(victim)),
			slog.Bool("settled", settled),
		)
		s.publishEvent(ctx, gameevents.PlayerEliminatedSubject, gameevents.PlayerEliminated{
			GameID:     gameID,
			Eliminated: victim,
			Cause:      gamedomain.ActionRoulette,
			RemainingN: len(work.Remaining),
		})
		if settled {
			s.publishEvent(ctx, gameevents.GameSettledSubject, gameevents.GameSettled{
				GameID:    gameID,
				Survivors: work.Remaining,
			})
		} else if victim == game.CurrentHolder {
			s.publishEvent(ctx, gameevents.TurnAdvancedSubject, gameevents.TurnAdvanced{
				GameID:    gameID,
				NewHolder: work.CurrentHolder,
				Deadline:  *work.TurnDeadline,
			})
		}
		return work, nil
	})
}

// ReorderTurns replaces the rotation with an admin-supplied explicit
// order. The new order must be a permutation of exactly the remaining
// participants; the holder resets to its head and the deadline
// extends. Admin only.
func (s *GameService) ReorderTurns(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID, explicit []gamedomain.ParticipantID) (*gamedomain.Game, error) {
	return s.withTelemetry(ctx, "ReorderTurns", gameID, func(ctx context.Context) (*gamedomain.Game, error) {
		if err := requireAdmin(ident); err != nil {
			return nil, err
		}
		game, err := s.loadCurrent(ctx, gameID)
		if err != nil {
			return nil, err
		}
		if err := requireInProgress(game); err != nil {
			return nil, err
		}
		policy, err := s.policyFor(game)
		if err != nil {
			return nil, err
		}

		newOrder, err := gamedomain.Reorder(game.TurnOrder, game.Remaining, explicit)
		if err != nil {
			return nil, err
		}

		work := game.Clone()
		work.TurnOrder = newOrder
		work.CurrentHolder = newOrder[0]
		deadline := s.now().Add(policy.TurnWindow)
		work.TurnDeadline = &deadline
		entry := s.appendEntry(work, ident.ActorID, gamedomain.ActionReorder, "")

		if err := s.commit(ctx, work, game.Version, []gamedomain.ActionLogEntry{entry}); err != nil {
			return nil, err
		}
		s.metrics.RecordTransition(string(gamedomain.ActionReorder))

		s.publishEvent(ctx, gameevents.TurnOrderChangedSubject, gameevents.TurnOrderChanged{
			GameID:    gameID,
			TurnOrder: newOrder,
			NewHolder: work.CurrentHolder,
		})
		return work, nil
	})
}

// SettleGame settles an InProgress game explicitly, freezing the
// remaining and eliminated sets as they stand. Admin only.
func (s *GameService) SettleGame(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID) (*gamedomain.Game, error) {
	return s.withTelemetry(ctx, "SettleGame", gameID, func(ctx context.Context) (*gamedomain.Game, error) {
		if err := requireAdmin(ident); err != nil {
			return nil, err
		}
		game, err := s.loadCurrent(ctx, gameID)
		if err != nil {
			return nil, err
		}
		if err := requireInProgress(game); err != nil {
			return nil, err
		}

		work := game.Clone()
		entry := s.settle(work, ident.ActorID)

		if err := s.commit(ctx, work, game.Version, []gamedomain.ActionLogEntry{entry}); err != nil {
			return nil, err
		}

		s.logger.InfoContext(ctx, "Game settled by admin",
			slog.String("game_id", gameID.String()),
			slog.String("actor", string(ident.ActorID)),
		)
		s.publishEvent(ctx, gameevents.GameSettledSubject, gameevents.GameSettled{
			GameID:    gameID,
			Survivors: work.Remaining,
		})
		return work, nil
	})
}

// CancelGame cancels a game from Open or InProgress. Terminal; no
// further actions are accepted. Admin only.
func (s *GameService) CancelGame(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID) (*gamedomain.Game, error) {
	return s.withTelemetry(ctx, "CancelGame", gameID, func(ctx context.Context) (*gamedomain.Game, error) {
		if err := requireAdmin(ident); err != nil {
			return nil, err
		}
		// Catch up the deadline first: a game the timeout policy would
		// already have settled is terminal, not cancellable.
		game, err := s.loadCurrent(ctx, gameID)
		if err != nil {
			return nil, err
		}
		if game.Status.Terminal() {
			return nil, gamedomain.ErrAlreadyTerminal
		}

		work := game.Clone()
		entry := s.appendEntry(work, ident.ActorID, gamedomain.ActionCancel, "")
		work.Status = gamedomain.StatusCancelled
		work.CurrentHolder = ""
		work.TurnDeadline = nil

		if err := s.commit(ctx, work, game.Version, []gamedomain.ActionLogEntry{entry}); err != nil {
			return nil, err
		}
		s.metrics.RecordTransition(string(gamedomain.ActionCancel))

		s.publishEvent(ctx, gameevents.GameCancelledSubject, gameevents.GameCancelled{GameID: gameID})
		return work, nil
	})
}

func requireInProgress(game *gamedomain.Game) error {
	if game.Status.Terminal() {
		return gamedomain.ErrAlreadyTerminal
	}
	if game.Status != gamedomain.StatusInProgress {
		return gamedomain.ErrWrongPhase
	}
	return nil
}
