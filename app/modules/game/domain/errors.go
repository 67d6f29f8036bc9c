package gamedomain

import "errors"

// Named rejection errors. The API layer maps each of these to a
// user-facing message; none of them leaves side effects behind.
var (
	// ErrWrongPhase rejects a transition not valid for the game's
	// current status.
	ErrWrongPhase = errors.New("game is not in the required phase")

	// ErrNotYourTurn rejects a player action from anyone but the
	// current turn holder.
	ErrNotYourTurn = errors.New("caller is not the current turn holder")

	// ErrNotAdmin rejects an admin-only action from a non-admin caller.
	ErrNotAdmin = errors.New("caller is not an admin")

	// ErrAlreadyTerminal rejects any action against a settled or
	// cancelled game.
	ErrAlreadyTerminal = errors.New("game is already settled or cancelled")

	// ErrInvalidReorder rejects an explicit order that is not a
	// permutation of the currently remaining participants.
	ErrInvalidReorder = errors.New("explicit order is not a permutation of remaining participants")

	// ErrNotInRemaining rejects an elimination target that is not in
	// the remaining set.
	ErrNotInRemaining = errors.New("participant is not in the remaining set")

	// ErrTargetNotAllowed rejects an elimination target supplied under
	// a variant without explicit elimination.
	ErrTargetNotAllowed = errors.New("variant does not allow naming an elimination target")

	// ErrEmptyPool rejects starting or drawing from an empty
	// participant pool.
	ErrEmptyPool = errors.New("participant pool is empty")

	// ErrNoRemainingPlayers is the defensive rotation failure: the
	// remaining set is empty or shares no entries with the turn order.
	ErrNoRemainingPlayers = errors.New("no remaining players in turn order")

	// ErrStateConflict signals a lost compare-and-swap race: another
	// concurrent action committed first. Callers re-read fresh state
	// and decide whether to retry; the orchestrator never retries a
	// conflicting write on its own.
	ErrStateConflict = errors.New("game state changed concurrently")

	// ErrUnknownVariant rejects a game referencing a variant policy
	// that was never registered.
	ErrUnknownVariant = errors.New("unknown game variant")
)
