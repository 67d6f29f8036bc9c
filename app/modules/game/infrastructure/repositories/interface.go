package gamedb

import (
	"context"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
)

// Repository is the store contract the orchestrator depends on. It is
// deliberately narrow: equality-filtered reads, inserts, and a
// conditional update that only applies when the row still carries the
// version the caller observed.
type Repository interface {
	CreateGame(ctx context.Context, game *gamedomain.Game) error
	GetGame(ctx context.Context, gameID gamedomain.GameID) (*gamedomain.Game, error)

	// UpdateGame writes game conditionally: the update applies only if
	// the stored row still has Version == expectedVersion, in which
	// case the committed row carries game.Version (expectedVersion+1).
	// Returns applied=false when another writer won the race.
	UpdateGame(ctx context.Context, game *gamedomain.Game, expectedVersion int64) (bool, error)

	// CommitTransition applies the conditional game update and appends
	// the transition's log entries in one transaction. Either both land
	// or neither does; a failed log append must never leave the state
	// write behind, or the log would carry a hole at the reserved
	// sequence forever. Returns applied=false when another writer won
	// the version race.
	CommitTransition(ctx context.Context, game *gamedomain.Game, expectedVersion int64, entries []gamedomain.ActionLogEntry) (bool, error)

	// InsertLogEntries appends action log entries. Sequences are
	// reserved by the conditional game update, so a unique violation
	// here means a double-write bug; it surfaces as
	// ErrSequenceConflict rather than being swallowed.
	InsertLogEntries(ctx context.Context, entries []gamedomain.ActionLogEntry) error
	ListLogEntries(ctx context.Context, gameID gamedomain.GameID) ([]gamedomain.ActionLogEntry, error)

	AddSignup(ctx context.Context, gameID gamedomain.GameID, participantID gamedomain.ParticipantID) error
	ListSignups(ctx context.Context, gameID gamedomain.GameID) ([]gamedomain.ParticipantID, error)

	// ListGamesByStatus supports the optional availability sweep.
	ListGamesByStatus(ctx context.Context, status gamedomain.Status) ([]gamedomain.GameID, error)
}
