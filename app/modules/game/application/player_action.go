package gameservice

import (
	"context"
	"log/slog"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
	gameevents "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/events"
)

// SubmitAction is the current turn holder taking their turn. For
// variants with explicit elimination the holder names a target to
// remove; otherwise the action just advances the rotation. The
// deadline catch-up runs first, so an expired holder cannot sneak an
// action in after their window closed.
func (s *GameService) SubmitAction(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID, target *gamedomain.ParticipantID) (*gamedomain.Game, error) {
	return s.withTelemetry(ctx, "SubmitAction", gameID, func(ctx context.Context) (*gamedomain.Game, error) {
		game, err := s.loadCurrent(ctx, gameID)
		if err != nil {
			return nil, err
		}
		if game.Status.Terminal() {
			return nil, gamedomain.ErrAlreadyTerminal
		}
		if game.Status != gamedomain.StatusInProgress {
			return nil, gamedomain.ErrWrongPhase
		}
		if ident.ActorID != game.CurrentHolder {
			return nil, gamedomain.ErrNotYourTurn
		}

		policy, err := s.policyFor(game)
		if err != nil {
			return nil, err
		}
		if target != nil && !policy.ExplicitElimination {
			return nil, gamedomain.ErrTargetNotAllowed
		}

		work := game.Clone()
		actor := ident.ActorID

		var eliminated gamedomain.ParticipantID
		if policy.ExplicitElimination && target != nil {
			remaining, err := gamedomain.EliminateExplicit(work.Remaining, *target)
			if err != nil {
				return nil, err
			}
			work.Remaining = remaining
			work.Eliminated = append(work.Eliminated, *target)
			eliminated = *target
		}

		entries := []gamedomain.ActionLogEntry{
			s.appendEntry(work, actor, gamedomain.ActionAct, eliminated),
		}

		settled := gamedomain.ShouldSettle(work.Remaining, work.SettlementThreshold)
		if settled {
			entries = append(entries, s.settle(work, gamedomain.SystemActor))
		} else {
			next, err := gamedomain.NextAfter(work.TurnOrder, work.Remaining, actor)
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
		s.metrics.RecordTransition(string(gamedomain.ActionAct))

		s.logger.InfoContext(ctx, "Turn action applied",
			slog.String("game_id", gameID.String()),
			slog.String("actor", string(actor)),
			slog.String("eliminated", string(eliminated)),
			slog.Bool("settled", settled),
		)
		if eliminated != "" {
			s.publishEvent(ctx, gameevents.PlayerEliminatedSubject, gameevents.PlayerEliminated{
				GameID:     gameID,
				Eliminated: eliminated,
				Cause:      gamedomain.ActionAct,
				RemainingN: len(work.Remaining),
			})
		}
		if settled {
			s.publishEvent(ctx, gameevents.GameSettledSubject, gameevents.GameSettled{
				GameID:    gameID,
				Survivors: work.Remaining,
			})
		} else {
			s.publishEvent(ctx, gameevents.TurnAdvancedSubject, gameevents.TurnAdvanced{
				GameID:    gameID,
				NewHolder: work.CurrentHolder,
				Deadline:  *work.TurnDeadline,
			})
		}
		return work, nil
	})
}
