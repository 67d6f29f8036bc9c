package gameservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
	gamedb "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/infrastructure/repositories"
)

func TestCreateGame(t *testing.T) {
	tests := []struct {
		name    string
		ident   gamedomain.Identity
		variant string
		wantErr error
	}{
		{
			name:    "admin creates open game",
			ident:   admin,
			variant: "tower",
		},
		{
			name:    "non-admin rejected",
			ident:   player("p1"),
			variant: "tower",
			wantErr: gamedomain.ErrNotAdmin,
		},
		{
			name:    "unknown variant rejected",
			ident:   admin,
			variant: "no-such-variant",
			wantErr: gamedomain.ErrUnknownVariant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)

			game, err := svc.CreateGame(context.Background(), tt.ident, tt.variant)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, gamedomain.StatusOpen, game.Status)
			assert.Equal(t, tt.variant, game.Variant)
			assert.Equal(t, tt.ident.ActorID, game.CreatedBy)
			assert.Empty(t, game.TurnOrder)
			assert.Nil(t, game.TurnDeadline)

			stored, err := repo.GetGame(context.Background(), game.ID)
			require.NoError(t, err)
			assert.Equal(t, game.ID, stored.ID)
		})
	}
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("signup on open game", func(t *testing.T) {
		svc, repo := newTestService(t)
		game, err := svc.CreateGame(ctx, admin, "tower")
		require.NoError(t, err)

		_, err = svc.Signup(ctx, player("p1"), game.ID)
		require.NoError(t, err)
		_, err = svc.Signup(ctx, player("p2"), game.ID)
		require.NoError(t, err)

		pool, err := repo.ListSignups(ctx, game.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []gamedomain.ParticipantID{"p1", "p2"}, pool)
	})

	t.Run("double signup is a no-op", func(t *testing.T) {
		svc, repo := newTestService(t)
		game, err := svc.CreateGame(ctx, admin, "tower")
		require.NoError(t, err)

		_, err = svc.Signup(ctx, player("p1"), game.ID)
		require.NoError(t, err)
		_, err = svc.Signup(ctx, player("p1"), game.ID)
		require.NoError(t, err)

		pool, err := repo.ListSignups(ctx, game.ID)
		require.NoError(t, err)
		assert.Len(t, pool, 1)
	})

	t.Run("signup after start rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		game, _ := startedGame(t, svc, "tower", 3)

		_, err := svc.Signup(ctx, player("latecomer"), game.ID)
		require.ErrorIs(t, err, gamedomain.ErrWrongPhase)
	})

	t.Run("signup on cancelled game rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		game, err := svc.CreateGame(ctx, admin, "tower")
		require.NoError(t, err)
		_, err = svc.CancelGame(ctx, admin, game.ID)
		require.NoError(t, err)

		_, err = svc.Signup(ctx, player("p1"), game.ID)
		require.ErrorIs(t, err, gamedomain.ErrAlreadyTerminal)
	})

	t.Run("signup on missing game", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.Signup(ctx, player("p1"), uuid.New())
		require.ErrorIs(t, err, gamedb.ErrGameNotFound)
	})
}
