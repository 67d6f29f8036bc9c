package gameservice

import (
	"bytes"
	"context"
	"fmt"

	gameaudit "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/audit"
	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
)

// ExportActionLog renders a game's action log as an xlsx workbook.
// Admin only.
func (s *GameService) ExportActionLog(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID) ([]byte, error) {
	if err := requireAdmin(ident); err != nil {
		return nil, err
	}

	game, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.ListLogEntries(ctx, gameID)
	if err != nil {
		return nil, err
	}

	workbook, err := gameaudit.BuildWorkbook(game, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to build audit workbook: %w", err)
	}
	defer workbook.Close()

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize audit workbook: %w", err)
	}
	return buf.Bytes(), nil
}
