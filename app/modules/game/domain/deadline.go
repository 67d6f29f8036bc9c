package gamedomain

import "time"

// DeadlineExpired reports whether deadline has passed at now. A nil
// deadline never expires. Pure comparison, no I/O; timeout handling is
// lazy and runs on the next read touching the game, never from a
// background timer.
func DeadlineExpired(deadline *time.Time, now time.Time) bool {
	if deadline == nil {
		return false
	}
	return now.After(*deadline)
}
