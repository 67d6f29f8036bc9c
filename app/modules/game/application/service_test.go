package gameservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
	gamedb "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/infrastructure/repositories"
)

// flakyCommitRepository fails commits on demand, the way a store does
// when the transaction rolls back: the error surfaces and nothing
// lands. Overriding InsertLogEntries as well guards against the commit
// path ever being split back into separate statements.
type flakyCommitRepository struct {
	gamedb.Repository
	failNext bool
}

var errStoreDown = errors.New("store unavailable")

func (r *flakyCommitRepository) CommitTransition(ctx context.Context, game *gamedomain.Game, expectedVersion int64, entries []gamedomain.ActionLogEntry) (bool, error) {
	if r.failNext {
		r.failNext = false
		return false, errStoreDown
	}
	return r.Repository.CommitTransition(ctx, game, expectedVersion, entries)
}

func (r *flakyCommitRepository) InsertLogEntries(ctx context.Context, entries []gamedomain.ActionLogEntry) error {
	if r.failNext {
		r.failNext = false
		return errStoreDown
	}
	return r.Repository.InsertLogEntries(ctx, entries)
}

func TestFailedCommitLeavesNothingBehind(t *testing.T) {
	ctx := context.Background()

	fake := gamedb.NewFakeRepository()
	flaky := &flakyCommitRepository{Repository: fake}
	svc, _ := newTestService(t)
	svc.repo = flaky

	game, _ := startedGame(t, svc, "tower", 3)
	holder := game.CurrentHolder

	flaky.failNext = true
	_, err := svc.SkipTurn(ctx, admin, game.ID)
	require.ErrorIs(t, err, errStoreDown)

	// The aborted transition must not have advanced anything: no
	// reserved sequence, no turn change, no log row.
	current, err := svc.GetGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), current.LastSequence)
	assert.Equal(t, holder, current.CurrentHolder)

	entries, err := fake.ListLogEntries(ctx, game.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// The next successful transition takes sequence 1, keeping the
	// log gap-free.
	updated, err := svc.SkipTurn(ctx, admin, game.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.LastSequence)

	entries, err = fake.ListLogEntries(ctx, game.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].Sequence)
}

func TestEntropyFailureEscapesRecovery(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	failure := gamedomain.EntropyFailure{Err: errors.New("entropy pool closed")}
	require.PanicsWithValue(t, failure, func() {
		_, _ = svc.withTelemetry(ctx, "SpinRoulette", gamedomain.GameID{}, func(context.Context) (*gamedomain.Game, error) {
			panic(failure)
		})
	})

	// Ordinary panics stay contained and surface as errors.
	_, err := svc.withTelemetry(ctx, "SpinRoulette", gamedomain.GameID{}, func(context.Context) (*gamedomain.Game, error) {
		panic("unrelated bug")
	})
	require.Error(t, err)
}
