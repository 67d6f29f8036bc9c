package gamedomain

// EliminateExplicit removes target from remaining. Returns
// ErrNotInRemaining if target is absent. The input slice is not
// modified.
func EliminateExplicit(remaining []ParticipantID, target ParticipantID) ([]ParticipantID, error) {
	out := make([]ParticipantID, 0, len(remaining))
	found := false
	for _, p := range remaining {
		if p == target && !found {
			found = true
			continue
		}
		out = append(out, p)
	}
	if !found {
		return nil, ErrNotInRemaining
	}
	return out, nil
}

// EliminateRandom removes a uniformly random participant from remaining
// and returns the shrunk set and the eliminated ID. Returns ErrEmptyPool
// on an empty set.
func EliminateRandom(remaining []ParticipantID) ([]ParticipantID, ParticipantID, error) {
	if len(remaining) == 0 {
		return nil, "", ErrEmptyPool
	}
	idx := Uniform(len(remaining))
	eliminated := remaining[idx]
	out := make([]ParticipantID, 0, len(remaining)-1)
	out = append(out, remaining[:idx]...)
	out = append(out, remaining[idx+1:]...)
	return out, eliminated, nil
}

// ShouldSettle reports whether the game auto-concludes at this
// remaining count.
func ShouldSettle(remaining []ParticipantID, threshold int) bool {
	return len(remaining) <= threshold
}
