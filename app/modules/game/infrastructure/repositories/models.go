package gamedb

import (
	"time"

	"github.com/uptrace/bun"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
)

// GameModel is the bun row for a game instance. Participant sets are
// stored as jsonb; version and last_sequence drive the conditional
// write discipline.
type GameModel struct {
	bun.BaseModel `bun:"table:games,alias:g"`

	ID                  gamedomain.GameID          `bun:"id,pk,type:uuid"`
	Variant             string                     `bun:"variant,notnull"`
	Status              gamedomain.Status          `bun:"status,notnull"`
	TurnOrder           []gamedomain.ParticipantID `bun:"turn_order,type:jsonb"`
	Remaining           []gamedomain.ParticipantID `bun:"remaining,type:jsonb"`
	Eliminated          []gamedomain.ParticipantID `bun:"eliminated,type:jsonb"`
	CurrentHolder       gamedomain.ParticipantID   `bun:"current_holder"`
	TurnDeadline        *time.Time                 `bun:"turn_deadline"`
	SettlementThreshold int                        `bun:"settlement_threshold,notnull"`
	LastSequence        int64                      `bun:"last_sequence,notnull,default:0"`
	Version             int64                      `bun:"version,notnull,default:0"`
	CreatedBy           gamedomain.ParticipantID   `bun:"created_by"`
	CreatedAt           time.Time                  `bun:"created_at,nullzero,notnull,default:now()"`
	UpdatedAt           time.Time                  `bun:"updated_at,nullzero,notnull,default:now()"`
}

// ActionLogModel is the bun row for one append-only log entry.
type ActionLogModel struct {
	bun.BaseModel `bun:"table:game_action_log,alias:al"`

	ID        int64                    `bun:"id,pk,autoincrement"`
	GameID    gamedomain.GameID        `bun:"game_id,type:uuid,notnull"`
	Sequence  int64                    `bun:"sequence,notnull"`
	ActorID   gamedomain.ParticipantID `bun:"actor_id"`
	Action    gamedomain.ActionType    `bun:"action,notnull"`
	TargetID  gamedomain.ParticipantID `bun:"target_id"`
	Timestamp time.Time                `bun:"timestamp,notnull"`
}

// SignupModel is the bun row for a signup-pool entry.
type SignupModel struct {
	bun.BaseModel `bun:"table:game_signups,alias:gs"`

	ID            int64                    `bun:"id,pk,autoincrement"`
	GameID        gamedomain.GameID        `bun:"game_id,type:uuid,notnull"`
	ParticipantID gamedomain.ParticipantID `bun:"participant_id,notnull"`
	CreatedAt     time.Time                `bun:"created_at,nullzero,notnull,default:now()"`
}

func gameToModel(g *gamedomain.Game) *GameModel {
	return &GameModel{
		ID:                  g.ID,
		Variant:             g.Variant,
		Status:              g.Status,
		TurnOrder:           g.TurnOrder,
		Remaining:           g.Remaining,
		Eliminated:          g.Eliminated,
		CurrentHolder:       g.CurrentHolder,
		TurnDeadline:        g.TurnDeadline,
		SettlementThreshold: g.SettlementThreshold,
		LastSequence:        g.LastSequence,
		Version:             g.Version,
		CreatedBy:           g.CreatedBy,
		CreatedAt:           g.CreatedAt,
		UpdatedAt:           g.UpdatedAt,
	}
}

func modelToGame(m *GameModel) *gamedomain.Game {
	return &gamedomain.Game{
		ID:                  m.ID,
		Variant:             m.Variant,
		Status:              m.Status,
		TurnOrder:           m.TurnOrder,
		Remaining:           m.Remaining,
		Eliminated:          m.Eliminated,
		CurrentHolder:       m.CurrentHolder,
		TurnDeadline:        m.TurnDeadline,
		SettlementThreshold: m.SettlementThreshold,
		LastSequence:        m.LastSequence,
		Version:             m.Version,
		CreatedBy:           m.CreatedBy,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func entryToModel(e gamedomain.ActionLogEntry) ActionLogModel {
	return ActionLogModel{
		GameID:    e.GameID,
		Sequence:  e.Sequence,
		ActorID:   e.ActorID,
		Action:    e.Action,
		TargetID:  e.TargetID,
		Timestamp: e.Timestamp,
	}
}

func modelToEntry(m ActionLogModel) gamedomain.ActionLogEntry {
	return gamedomain.ActionLogEntry{
		GameID:    m.GameID,
		Sequence:  m.Sequence,
		ActorID:   m.ActorID,
		Action:    m.Action,
		TargetID:  m.TargetID,
		Timestamp: m.Timestamp,
	}
}
