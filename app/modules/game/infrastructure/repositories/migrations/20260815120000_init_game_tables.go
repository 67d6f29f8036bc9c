package gamemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating game tables...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS games (
				id UUID PRIMARY KEY,
				variant TEXT NOT NULL,
				status TEXT NOT NULL,
				turn_order JSONB NOT NULL DEFAULT '[]',
				remaining JSONB NOT NULL DEFAULT '[]',
				eliminated JSONB NOT NULL DEFAULT '[]',
				current_holder TEXT NOT NULL DEFAULT '',
				turn_deadline TIMESTAMPTZ,
				settlement_threshold INT NOT NULL DEFAULT 1,
				last_sequence BIGINT NOT NULL DEFAULT 0,
				version BIGINT NOT NULL DEFAULT 0,
				created_by TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create games table: %w", err)
		}

		// The unique index on (game_id, sequence) is the backstop for
		// the sequence-reservation discipline: a double-reserved
		// sequence fails hard instead of silently double-writing.
		_, err = db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS game_action_log (
				id BIGSERIAL PRIMARY KEY,
				game_id UUID NOT NULL REFERENCES games(id),
				sequence BIGINT NOT NULL,
				actor_id TEXT NOT NULL DEFAULT '',
				action TEXT NOT NULL,
				target_id TEXT NOT NULL DEFAULT '',
				timestamp TIMESTAMPTZ NOT NULL,
				UNIQUE(game_id, sequence)
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create game_action_log table: %w", err)
		}

		_, err = db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS game_signups (
				id BIGSERIAL PRIMARY KEY,
				game_id UUID NOT NULL REFERENCES games(id),
				participant_id TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE(game_id, participant_id)
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create game_signups table: %w", err)
		}

		fmt.Println("Game tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping game tables...")

		for _, stmt := range []string{
			`DROP TABLE IF EXISTS game_signups;`,
			`DROP TABLE IF EXISTS game_action_log;`,
			`DROP TABLE IF EXISTS games;`,
		} {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to drop game tables: %w", err)
			}
		}

		fmt.Println("Game tables dropped successfully!")
		return nil
	})
}
