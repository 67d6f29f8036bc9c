package gameservice

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
	gamedb "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/infrastructure/repositories"
)

var testVariants = map[string]gamedomain.VariantPolicy{
	"tower": {
		Name:                "tower",
		TimeoutAction:       gamedomain.TimeoutAutoSkip,
		SettlementThreshold: 1,
		TurnWindow:          time.Hour,
	},
	"knockout": {
		Name:                "knockout",
		TimeoutAction:       gamedomain.TimeoutAutoEliminate,
		SettlementThreshold: 1,
		TurnWindow:          time.Hour,
		ExplicitElimination: true,
	},
	"last-three": {
		Name:                "last-three",
		TimeoutAction:       gamedomain.TimeoutNoAction,
		SettlementThreshold: 3,
		TurnWindow:          time.Hour,
	},
}

func newTestService(t *testing.T) (*GameService, *gamedb.FakeRepository) {
	t.Helper()
	repo := gamedb.NewFakeRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")
	metrics := NewMetrics(prometheus.NewRegistry())

	svc := NewGameService(repo, nil, testVariants, nil, logger, metrics, tracer)
	return svc, repo
}

var (
	admin  = gamedomain.Identity{ActorID: "admin-1", IsAdmin: true}
	player = func(id gamedomain.ParticipantID) gamedomain.Identity {
		return gamedomain.Identity{ActorID: id}
	}
)

// startedGame creates, fills, and starts a game with n participants,
// returning the started state and the participant IDs.
func startedGame(t *testing.T, svc *GameService, variant string, n int) (*gamedomain.Game, []gamedomain.ParticipantID) {
	t.Helper()
	ctx := context.Background()

	game, err := svc.CreateGame(ctx, admin, variant)
	require.NoError(t, err)

	participants := make([]gamedomain.ParticipantID, 0, n)
	for i := 0; i < n; i++ {
		p := gamedomain.ParticipantID(fmt.Sprintf("%s-%d", gofakeit.Username(), i))
		participants = append(participants, p)
		_, err := svc.Signup(ctx, player(p), game.ID)
		require.NoError(t, err)
	}

	started, err := svc.StartGame(ctx, admin, game.ID)
	require.NoError(t, err)
	return started, participants
}

// requireInvariants asserts the structural invariants that must hold
// after any sequence of valid transitions.
func requireInvariants(t *testing.T, g *gamedomain.Game) {
	t.Helper()

	if g.CurrentHolder != "" {
		require.True(t, g.InRemaining(g.CurrentHolder), "current holder %q not in remaining", g.CurrentHolder)
	}
	if g.Status == gamedomain.StatusInProgress {
		require.NotEmpty(t, g.CurrentHolder, "in-progress game must have a turn holder")
	}
	for _, e := range g.Eliminated {
		require.False(t, g.InRemaining(e), "participant %q is both remaining and eliminated", e)
	}
}
