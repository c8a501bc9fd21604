// Package database handles the PostgreSQL connection pool and schema setup.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger sets up the Zap logger to log to the console in a human readable
// format.
func InitLogger() *zap.Logger {
	prodConfig := zap.NewProductionConfig()
	prodConfig.Encoding = "console"
	prodConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	prodConfig.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	logger, _ := prodConfig.Build()
	return logger
}

// Connect opens a pgx pool against databaseURL, retrying with exponential
// backoff until the database accepts connections, then ensures the schema.
func Connect(ctx context.Context, databaseURL string, logger *zap.Logger) (*pgxpool.Pool, error) {
	const initialInterval = 2 * time.Second
	const maxInterval = 30 * time.Second
	const maxElapsed = 5 * time.Minute

	var pool *pgxpool.Pool

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = initialInterval
	bo.MaxInterval = maxInterval
	bo.MaxElapsedTime = maxElapsed

	err := backoff.RetryNotify(func() error {
		var err error
		pool, err = pgxpool.New(ctx, databaseURL)
		if err != nil {
			return err
		}
		if err = pool.Ping(ctx); err != nil {
			pool.Close()
			return err
		}
		return nil
	}, bo, func(err error, next time.Duration) {
		logger.Warn("database not ready, retrying",
			zap.Error(err),
			zap.Duration("next_attempt_in", next),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("database connection established")
	return pool, nil
}

// EnsureSchema creates the four relational tables. Uniqueness of slug,
// contact email and API key is enforced here, not by application pre-checks;
// ownership cascades Organization -> Project -> Task -> TaskComment.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS organizations (
			id            BIGSERIAL PRIMARY KEY,
			name          TEXT NOT NULL,
			slug          TEXT NOT NULL,
			contact_email TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			api_key       TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT organizations_slug_key UNIQUE (slug),
			CONSTRAINT organizations_contact_email_key UNIQUE (contact_email),
			CONSTRAINT organizations_api_key_key UNIQUE (api_key)
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id              BIGSERIAL PRIMARY KEY,
			organization_id BIGINT NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
			name            TEXT NOT NULL,
			description     TEXT NOT NULL DEFAULT '',
			status          TEXT NOT NULL DEFAULT 'ACTIVE',
			due_date        DATE,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id             BIGSERIAL PRIMARY KEY,
			project_id     BIGINT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			title          TEXT NOT NULL,
			description    TEXT NOT NULL DEFAULT '',
			status         TEXT NOT NULL DEFAULT 'TODO',
			assignee_email TEXT NOT NULL DEFAULT '',
			due_date       TIMESTAMPTZ,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS task_comments (
			id           BIGSERIAL PRIMARY KEY,
			task_id      BIGINT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
			content      TEXT NOT NULL,
			author_email TEXT NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_projects_organization_id ON projects (organization_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_project_id ON tasks (project_id)`,
		`CREATE INDEX IF NOT EXISTS idx_task_comments_task_id ON task_comments (task_id)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
