package gamedomain

// InitializeOrder returns a uniformly random permutation of pool,
// computed via Fisher-Yates with a secure swap index per position.
// The input slice is not modified.
func InitializeOrder(pool []ParticipantID) []ParticipantID {
	order := append([]ParticipantID(nil), pool...)
	for i := len(order) - 1; i > 0; i-- {
		j := Uniform(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// ActiveOrder returns the subsequence of order whose entries are still
// in remaining, preserving relative order. Rotation always iterates
// this snapshot, never the raw order, so eliminated stragglers cannot
// corrupt the rotation.
func ActiveOrder(order, remaining []ParticipantID) []ParticipantID {
	alive := make(map[ParticipantID]struct{}, len(remaining))
	for _, p := range remaining {
		alive[p] = struct{}{}
	}
	active := make([]ParticipantID, 0, len(remaining))
	for _, p := range order {
		if _, ok := alive[p]; ok {
			active = append(active, p)
		}
	}
	return active
}

// NextAfter returns the next remaining participant strictly after
// current in order, wrapping around. It never returns current itself,
// and tolerates a current that has already been eliminated (the
// advance-after-elimination case). Returns ErrNoRemainingPlayers when
// remaining is empty or shares no entries with order.
func NextAfter(order, remaining []ParticipantID, current ParticipantID) (ParticipantID, error) {
	alive := make(map[ParticipantID]struct{}, len(remaining))
	for _, p := range remaining {
		alive[p] = struct{}{}
	}

	n := len(order)
	if n == 0 {
		return "", ErrNoRemainingPlayers
	}

	start := -1
	for i, p := range order {
		if p == current {
			start = i
			break
		}
	}

	for i := 1; i <= n; i++ {
		candidate := order[(start+i+n)%n]
		if candidate == current {
			continue
		}
		if _, ok := alive[candidate]; ok {
			return candidate, nil
		}
	}
	return "", ErrNoRemainingPlayers
}

// Reorder validates an admin-supplied explicit order against the
// currently remaining subset of currentOrder. The explicit order must
// be a permutation of exactly that multiset; anything missing,
// duplicated, or foreign is rejected with ErrInvalidReorder. Randomness
// is bypassed entirely.
func Reorder(currentOrder, remaining, explicit []ParticipantID) ([]ParticipantID, error) {
	active := ActiveOrder(currentOrder, remaining)
	if len(explicit) != len(active) {
		return nil, ErrInvalidReorder
	}
	counts := make(map[ParticipantID]int, len(active))
	for _, p := range active {
		counts[p]++
	}
	for _, p := range explicit {
		counts[p]--
		if counts[p] < 0 {
			return nil, ErrInvalidReorder
		}
	}
	return append([]ParticipantID(nil), explicit...), nil
}
