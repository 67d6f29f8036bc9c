package gamedb

import "errors"

var (
	// ErrGameNotFound is returned when no game row matches the ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrSequenceConflict is returned when an action log insert hits
	// the (game_id, sequence) unique index. Sequences are reserved by
	// the conditional game update, so this indicates a double-write
	// bug and must never be silently absorbed.
	ErrSequenceConflict = errors.New("duplicate action log sequence")

	// ErrDuplicateSignup is returned when a participant signs up for
	// the same game twice.
	ErrDuplicateSignup = errors.New("participant already signed up")
)
