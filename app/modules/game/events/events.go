package gameevents

import (
	"time"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
)

const (
	GameStream = "game" // Stream for all game-related events

	GameStartedSubject      = "game.started"            // Subject for a game leaving signup and starting
	TurnAdvancedSubject     = "game.turn.advanced"      // Subject for the turn passing to a new holder
	PlayerEliminatedSubject = "game.player.eliminated"  // Subject for a participant leaving the remaining set
	TurnOrderChangedSubject = "game.turn.order.changed" // Subject for an admin reorder
	GameSettledSubject      = "game.settled"            // Subject for a game reaching settlement
	GameCancelledSubject    = "game.cancelled"          // Subject for an admin cancellation
)

// GameStarted is published when a game transitions to in-progress.
type GameStarted struct {
	GameID      gamedomain.GameID          `json:"game_id"`
	Variant     string                     `json:"variant"`
	TurnOrder   []gamedomain.ParticipantID `json:"turn_order"`
	FirstHolder gamedomain.ParticipantID   `json:"first_holder"`
	Deadline    time.Time                  `json:"deadline"`
}

// TurnAdvanced is published whenever the turn holder changes.
type TurnAdvanced struct {
	GameID    gamedomain.GameID        `json:"game_id"`
	NewHolder gamedomain.ParticipantID `json:"new_holder"`
	Deadline  time.Time                `json:"deadline"`
}

// PlayerEliminated is published when a participant is eliminated,
// whatever the cause (explicit choice, roulette, deadline default).
type PlayerEliminated struct {
	GameID     gamedomain.GameID        `json:"game_id"`
	Eliminated gamedomain.ParticipantID `json:"eliminated"`
	Cause      gamedomain.ActionType    `json:"cause"`
	RemainingN int                      `json:"remaining_n"`
}

// TurnOrderChanged is published after an admin reorder.
type TurnOrderChanged struct {
	GameID    gamedomain.GameID          `json:"game_id"`
	TurnOrder []gamedomain.ParticipantID `json:"turn_order"`
	NewHolder gamedomain.ParticipantID   `json:"new_holder"`
}

// GameSettled is published exactly once per settled game.
type GameSettled struct {
	GameID    gamedomain.GameID          `json:"game_id"`
	Survivors []gamedomain.ParticipantID `json:"survivors"`
}

// GameCancelled is published when an admin cancels a game.
type GameCancelled struct {
	GameID gamedomain.GameID `json:"game_id"`
}
