package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/isbleu/concept/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

func postgresDSN(cfg config.Postgres) string {
	return fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=disable password=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.DbName, cfg.Password)
}

// NewPostgresClient opens the concepts database and applies pending migrations.
// It panics when the database stays unreachable.
func NewPostgresClient(ctx context.Context, cfg *config.Config) *sqlx.DB {
	var db *sqlx.DB

	err := connectWithRetry(ctx, "postgres", connAttempts, connDelay, func(ctx context.Context) (err error) {
		db, err = sqlx.ConnectContext(ctx, "pgx", postgresDSN(cfg.Postgres))
		return err
	})
	if err != nil {
		slog.Error("postgres unavailable", slog.String("err", err.Error()))
		panic(err)
	}

	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second)
	db.SetConnMaxIdleTime(time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second)

	if err = migrateConcepts(db, cfg.Postgres.MigrationDir); err != nil {
		slog.Error("concepts migration failed", slog.String("dir", cfg.Postgres.MigrationDir), slog.String("err", err.Error()))
		panic(err)
	}
	slog.Info("concepts schema is up to date")

	return db
}

func migrateConcepts(db *sqlx.DB, migrationDir string) error {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationDir, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
