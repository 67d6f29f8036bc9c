package gameservice

import (
	"context"
	"log/slog"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
	gameevents "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/events"
)

// applyLazyTimeout performs the deadline catch-up transition if the
// game's turn deadline has expired. It is invoked on every read or
// action touching a game; correctness never depends on background
// work, only on the next read catching up before serving state.
//
// With no expiry (or a NoAction variant) the loaded state is returned
// untouched, which is what makes back-to-back reads idempotent. A lost
// commit race means another request already performed this exact
// catch-up; callers re-read.
func (s *GameService) applyLazyTimeout(ctx context.Context, game *gamedomain.Game) (*gamedomain.Game, error) {
	if game.Status != gamedomain.StatusInProgress || !gamedomain.DeadlineExpired(game.TurnDeadline, s.now()) {
		return game, nil
	}

	policy, err := s.policyFor(game)
	if err != nil {
		return nil, err
	}

	switch policy.TimeoutAction {
	case gamedomain.TimeoutAutoSkip:
		return s.timeoutSkip(ctx, game, policy)
	case gamedomain.TimeoutAutoEliminate:
		return s.timeoutEliminate(ctx, game, policy)
	default:
		return game, nil
	}
}

func (s *GameService) timeoutSkip(ctx context.Context, game *gamedomain.Game, policy gamedomain.VariantPolicy) (*gamedomain.Game, error) {
	work := game.Clone()
	expired := work.CurrentHolder

	next, err := gamedomain.NextAfter(work.TurnOrder, work.Remaining, expired)
	if err != nil {
		return nil, err
	}
	entry := s.appendEntry(work, gamedomain.SystemActor, gamedomain.ActionSkip, expired)
	work.CurrentHolder = next
	deadline := s.now().Add(policy.TurnWindow)
	work.TurnDeadline = &deadline

	if err := s.commit(ctx, work, game.Version, []gamedomain.ActionLogEntry{entry}); err != nil {
		return nil, err
	}
	s.metrics.RecordLazyTimeout()
	s.metrics.RecordTransition(string(gamedomain.ActionSkip))

	s.logger.InfoContext(ctx, "Expired turn skipped",
		slog.String("game_id", game.ID.String()),
		slog.String("expired_holder", string(expired)),
		slog.String("new_holder", string(next)),
	)
	s.publishEvent(ctx, gameevents.TurnAdvancedSubject, gameevents.TurnAdvanced{
		GameID:    game.ID,
		NewHolder: next,
		Deadline:  deadline,
	})
	return work, nil
}

func (s *GameService) timeoutEliminate(ctx context.Context, game *gamedomain.Game, policy gamedomain.VariantPolicy) (*gamedomain.Game, error) {
	work := game.Clone()
	victim := work.CurrentHolder

	remaining, err := gamedomain.EliminateExplicit(work.Remaining, victim)
	if err != nil {
		return nil, err
	}
	work.Remaining = remaining
	work.Eliminated = append(work.Eliminated, victim)

	entries := []gamedomain.ActionLogEntry{
		s.appendEntry(work, gamedomain.SystemActor, gamedomain.ActionAct, victim),
	}

	settled := gamedomain.ShouldSettle(work.Remaining, work.SettlementThreshold)
	if settled {
		entries = append(entries, s.settle(work, gamedomain.SystemActor))
	} else {
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
	s.metrics.RecordLazyTimeout()

	s.logger.InfoContext(ctx, "Expired holder eliminated",
		slog.String("game_id", game.ID.String()),
		slog.String("eliminated", string(victim)),
		slog.Bool("settled", settled),
	)
	s.publishEvent(ctx, gameevents.PlayerEliminatedSubject, gameevents.PlayerEliminated{
		GameID:     game.ID,
		Eliminated: victim,
		Cause:      gamedomain.ActionAct,
		RemainingN: len(work.Remaining),
	})
	if settled {
		s.publishEvent(ctx, gameevents.GameSettledSubject, gameevents.GameSettled{
			GameID:    game.ID,
			Survivors: work.Remaining,
		})
	} else {
		s.publishEvent(ctx, gameevents.TurnAdvancedSubject, gameevents.TurnAdvanced{
			GameID:    game.ID,
			NewHolder: work.CurrentHolder,
			Deadline:  *work.TurnDeadline,
		})
	}
	return work, nil
}

// settle marks the working copy settled and reserves its Settle log
// entry. Remaining and Eliminated freeze as they stand.
func (s *GameService) settle(work *gamedomain.Game, actor gamedomain.ParticipantID) gamedomain.ActionLogEntry {
	entry := s.appendEntry(work, actor, gamedomain.ActionSettle, "")
	work.Status = gamedomain.StatusSettled
	work.CurrentHolder = ""
	work.TurnDeadline = nil
	s.metrics.RecordTransition(string(gamedomain.ActionSettle))
	return entry
}
