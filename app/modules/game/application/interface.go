package gameservice

import (
	"context"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
)

// Service is the lifecycle controller surface the request-handler
// layer consumes.
type Service interface {
	CreateGame(ctx context.Context, ident gamedomain.Identity, variant string) (*gamedomain.Game, error)
	Signup(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID) (*gamedomain.Game, error)
	StartGame(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID) (*gamedomain.Game, error)
	GetGame(ctx context.Context, gameID gamedomain.GameID) (*gamedomain.Game, error)
	ListActionLog(ctx context.Context, gameID gamedomain.GameID) ([]gamedomain.ActionLogEntry, error)
	SubmitAction(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID, target *gamedomain.ParticipantID) (*gamedomain.Game, error)
	SkipTurn(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID) (*gamedomain.Game, error)
	SpinRoulette(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID) (*gamedomain.Game, error)
	ReorderTurns(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID, explicit []gamedomain.ParticipantID) (*gamedomain.Game, error)
	SettleGame(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID) (*gamedomain.Game, error)
	CancelGame(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID) (*gamedomain.Game, error)
	ExportActionLog(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID) ([]byte, error)
}
