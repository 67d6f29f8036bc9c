package gamedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
)

const pgUniqueViolation = "23505"

// GameDBImpl is the concrete implementation of the Repository interface
// using bun.
type GameDBImpl struct {
	DB *bun.DB
}

// NewGameDB creates a bun-backed repository.
func NewGameDB(db *bun.DB) *GameDBImpl {
	return &GameDBImpl{DB: db}
}

// CreateGame inserts a new game row.
func (db *GameDBImpl) CreateGame(ctx context.Context, game *gamedomain.Game) error {
	model := gameToModel(game)
	_, err := db.DB.NewInsert().
		Model(model).
		Exec(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to create game", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create game: %w", err)
	}
	slog.InfoContext(ctx, "Game created in DB", slog.String("game_id", game.ID.String()))
	return nil
}

// GetGame retrieves a specific game by ID.
func (db *GameDBImpl) GetGame(ctx context.Context, gameID gamedomain.GameID) (*gamedomain.Game, error) {
	model := new(GameModel)
	err := db.DB.NewSelect().
		Model(model).
		Where("id = ?", gameID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to fetch game: %w", err)
	}
	return modelToGame(model), nil
}

// UpdateGame applies the full game state conditionally on the version
// the caller observed. A zero-row update means another writer committed
// first and the caller must re-read.
func (db *GameDBImpl) UpdateGame(ctx context.Context, game *gamedomain.Game, expectedVersion int64) (bool, error) {
	return updateGame(ctx, db.DB, game, expectedVersion)
}

// CommitTransition runs the conditional game update and the log append
// in a single transaction so a failure anywhere rolls back both.
func (db *GameDBImpl) CommitTransition(ctx context.Context, game *gamedomain.Game, expectedVersion int64, entries []gamedomain.ActionLogEntry) (bool, error) {
	var applied bool
	err := db.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var err error
		applied, err = updateGame(ctx, tx, game, expectedVersion)
		if err != nil || !applied {
			return err
		}
		return insertLogEntries(ctx, tx, entries)
	})
	if err != nil {
		return false, fmt.Errorf("failed to commit transition: %w", err)
	}
	return applied, nil
}

func updateGame(ctx context.Context, idb bun.IDB, game *gamedomain.Game, expectedVersion int64) (bool, error) {
	model := gameToModel(game)
	res, err := idb.NewUpdate().
		Model(model).
		ExcludeColumn("created_at").
		Where("id = ? AND version = ?", game.ID, expectedVersion).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update game: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		slog.DebugContext(ctx, "Conditional game update lost race",
			slog.String("game_id", game.ID.String()),
			slog.Int64("expected_version", expectedVersion),
		)
		return false, nil
	}
	return true, nil
}

// InsertLogEntries appends action log rows. The (game_id, sequence)
// unique index turns any double-reserved sequence into a hard error.
func (db *GameDBImpl) InsertLogEntries(ctx context.Context, entries []gamedomain.ActionLogEntry) error {
	return insertLogEntries(ctx, db.DB, entries)
}

func insertLogEntries(ctx context.Context, idb bun.IDB, entries []gamedomain.ActionLogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	models := make([]ActionLogModel, 0, len(entries))
	for _, e := range entries {
		models = append(models, entryToModel(e))
	}
	_, err := idb.NewInsert().
		Model(&models).
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: game %s", ErrSequenceConflict, entries[0].GameID)
		}
		return fmt.Errorf("failed to insert action log entries: %w", err)
	}
	return nil
}

// ListLogEntries retrieves the full action log for a game in sequence
// order.
func (db *GameDBImpl) ListLogEntries(ctx context.Context, gameID gamedomain.GameID) ([]gamedomain.ActionLogEntry, error) {
	var models []ActionLogModel
	err := db.DB.NewSelect().
		Model(&models).
		Where("game_id = ?", gameID).
		Order("sequence ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list action log entries: %w", err)
	}
	entries := make([]gamedomain.ActionLogEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, modelToEntry(m))
	}
	return entries, nil
}

// AddSignup adds a participant to a game's signup pool.
func (db *GameDBImpl) AddSignup(ctx context.Context, gameID gamedomain.GameID, participantID gamedomain.ParticipantID) error {
	model := &SignupModel{
		GameID:        gameID,
		ParticipantID: participantID,
	}
	_, err := db.DB.NewInsert().
		Model(model).
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSignup
		}
		return fmt.Errorf("failed to add signup: %w", err)
	}
	return nil
}

// ListSignups retrieves the signup pool for a game in signup order.
func (db *GameDBImpl) ListSignups(ctx context.Context, gameID gamedomain.GameID) ([]gamedomain.ParticipantID, error) {
	var models []SignupModel
	err := db.DB.NewSelect().
		Model(&models).
		Where("game_id = ?", gameID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list signups: %w", err)
	}
	pool := make([]gamedomain.ParticipantID, 0, len(models))
	for _, m := range models {
		pool = append(pool, m.ParticipantID)
	}
	return pool, nil
}

// ListGamesByStatus retrieves the IDs of games in the given status.
func (db *GameDBImpl) ListGamesByStatus(ctx context.Context, status gamedomain.Status) ([]gamedomain.GameID, error) {
	var ids []gamedomain.GameID
	err := db.DB.NewSelect().
		Model((*GameModel)(nil)).
		Column("id").
		Where("status = ?", status).
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list games by status: %w", err)
	}
	return ids, nil
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation
}
