package gamedb

import (
	"context"
	"fmt"
	"sort"
	"sync"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
)

// FakeRepository is an in-memory Repository used by service tests,
// including the concurrency property tests. It honors the same
// conditional-write and unique-sequence semantics as the bun
// implementation.
type FakeRepository struct {
	mu      sync.Mutex
	games   map[gamedomain.GameID]*gamedomain.Game
	logs    map[gamedomain.GameID][]gamedomain.ActionLogEntry
	seqs    map[gamedomain.GameID]map[int64]struct{}
	signups map[gamedomain.GameID][]gamedomain.ParticipantID
}

// NewFakeRepository creates an empty in-memory repository.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		games:   make(map[gamedomain.GameID]*gamedomain.Game),
		logs:    make(map[gamedomain.GameID][]gamedomain.ActionLogEntry),
		seqs:    make(map[gamedomain.GameID]map[int64]struct{}),
		signups: make(map[gamedomain.GameID][]gamedomain.ParticipantID),
	}
}

func (f *FakeRepository) CreateGame(_ context.Context, game *gamedomain.Game) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.games[game.ID]; ok {
		return fmt.Errorf("game %s already exists", game.ID)
	}
	f.games[game.ID] = game.Clone()
	return nil
}

func (f *FakeRepository) GetGame(_ context.Context, gameID gamedomain.GameID) (*gamedomain.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.games[gameID]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g.Clone(), nil
}

func (f *FakeRepository) UpdateGame(_ context.Context, game *gamedomain.Game, expectedVersion int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.games[game.ID]
	if !ok {
		return false, ErrGameNotFound
	}
	if stored.Version != expectedVersion {
		return false, nil
	}
	f.games[game.ID] = game.Clone()
	return true, nil
}

// CommitTransition mirrors the transactional bun implementation: the
// state write and the log append land together or not at all.
func (f *FakeRepository) CommitTransition(_ context.Context, game *gamedomain.Game, expectedVersion int64, entries []gamedomain.ActionLogEntry) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.games[game.ID]
	if !ok {
		return false, ErrGameNotFound
	}
	if stored.Version != expectedVersion {
		return false, nil
	}
	if err := f.checkSequencesLocked(entries); err != nil {
		return false, err
	}
	f.games[game.ID] = game.Clone()
	f.appendEntriesLocked(entries)
	return true, nil
}

func (f *FakeRepository) InsertLogEntries(_ context.Context, entries []gamedomain.ActionLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkSequencesLocked(entries); err != nil {
		return err
	}
	f.appendEntriesLocked(entries)
	return nil
}

// checkSequencesLocked rejects the whole batch before anything is
// applied, so a conflicting entry cannot leave a partial append.
func (f *FakeRepository) checkSequencesLocked(entries []gamedomain.ActionLogEntry) error {
	seen := make(map[gamedomain.GameID]map[int64]struct{})
	for _, e := range entries {
		if _, dup := f.seqs[e.GameID][e.Sequence]; dup {
			return fmt.Errorf("%w: game %s sequence %d", ErrSequenceConflict, e.GameID, e.Sequence)
		}
		batch, ok := seen[e.GameID]
		if !ok {
			batch = make(map[int64]struct{})
			seen[e.GameID] = batch
		}
		if _, dup := batch[e.Sequence]; dup {
			return fmt.Errorf("%w: game %s sequence %d", ErrSequenceConflict, e.GameID, e.Sequence)
		}
		batch[e.Sequence] = struct{}{}
	}
	return nil
}

func (f *FakeRepository) appendEntriesLocked(entries []gamedomain.ActionLogEntry) {
	for _, e := range entries {
		used, ok := f.seqs[e.GameID]
		if !ok {
			used = make(map[int64]struct{})
			f.seqs[e.GameID] = used
		}
		used[e.Sequence] = struct{}{}
		f.logs[e.GameID] = append(f.logs[e.GameID], e)
	}
}

func (f *FakeRepository) ListLogEntries(_ context.Context, gameID gamedomain.GameID) ([]gamedomain.ActionLogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries := append([]gamedomain.ActionLogEntry(nil), f.logs[gameID]...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Sequence < entries[j].Sequence })
	return entries, nil
}

func (f *FakeRepository) AddSignup(_ context.Context, gameID gamedomain.GameID, participantID gamedomain.ParticipantID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.signups[gameID] {
		if p == participantID {
			return ErrDuplicateSignup
		}
	}
	f.signups[gameID] = append(f.signups[gameID], participantID)
	return nil
}

func (f *FakeRepository) ListSignups(_ context.Context, gameID gamedomain.GameID) ([]gamedomain.ParticipantID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]gamedomain.ParticipantID(nil), f.signups[gameID]...), nil
}

func (f *FakeRepository) ListGamesByStatus(_ context.Context, status gamedomain.Status) ([]gamedomain.GameID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []gamedomain.GameID
	for id, g := range f.games {
		if g.Status == status {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
