// Package gameaudit renders a game's append-only action log as a
// spreadsheet for league admins.
package gameaudit

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
)

const sheetName = "Action Log"

// BuildWorkbook builds an xlsx workbook with one row per action log
// entry, in sequence order.
func BuildWorkbook(game *gamedomain.Game, entries []gamedomain.ActionLogEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	header := []any{"Sequence", "Timestamp", "Actor", "Action", "Target"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range entries {
		actor := string(e.ActorID)
		if e.ActorID == gamedomain.SystemActor {
			actor = "system"
		}
		row := []any{
			e.Sequence,
			e.Timestamp.UTC().Format(time.RFC3339),
			actor,
			string(e.Action),
			string(e.TargetID),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	summary := fmt.Sprintf("Game %s (%s): %s", game.ID, game.Variant, game.Status)
	if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", len(entries)+3), summary); err != nil {
		return nil, fmt.Errorf("failed to write summary: %w", err)
	}
	return f, nil
}
