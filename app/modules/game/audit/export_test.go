package gameaudit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
)

func TestBuildWorkbook(t *testing.T) {
	gameID := uuid.New()
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	game := &gamedomain.Game{
		ID:        gameID,
		Variant:   "last-three",
		Status:    gamedomain.StatusSettled,
		Remaining: []gamedomain.ParticipantID{"p1", "p2", "p3"},
	}
	entries := []gamedomain.ActionLogEntry{
		{GameID: gameID, Sequence: 1, ActorID: "admin-1", Action: gamedomain.ActionRoulette, TargetID: "p4", Timestamp: ts},
		{GameID: gameID, Sequence: 2, ActorID: gamedomain.SystemActor, Action: gamedomain.ActionSettle, Timestamp: ts.Add(time.Minute)},
	}

	f, err := BuildWorkbook(game, entries)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	// Header, two entries, blank spacer, summary.
	require.Len(t, rows, 5)

	assert.Equal(t, []string{"Sequence", "Timestamp", "Actor", "Action", "Target"}, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "admin-1", rows[1][2])
	assert.Equal(t, string(gamedomain.ActionRoulette), rows[1][3])
	assert.Equal(t, "p4", rows[1][4])
	assert.Equal(t, "system", rows[2][2], "system actor is labeled in exports")
	assert.Contains(t, rows[4][0], gameID.String())
}

func TestBuildWorkbookEmptyLog(t *testing.T) {
	game := &gamedomain.Game{
		ID:      uuid.New(),
		Variant: "tower",
		Status:  gamedomain.StatusOpen,
	}

	f, err := BuildWorkbook(game, nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Contains(t, rows[2][0], "OPEN")
}
