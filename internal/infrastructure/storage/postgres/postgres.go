package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"shipyard/internal/infrastructure/migration"
)

type Storage struct {
	*VesselRepository
	pool *pgxpool.Pool
}

// New открывает пул и накатывает миграции. migrateURL — тот же DSN со схемой pgx5://
func New(ctx context.Context, dsn, migrateURL string, log *slog.Logger) (*Storage, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	mg := migration.NewMigration(migration.Postgres, migrateURL, nil)
	if err := mg.Up(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Storage{
		VesselRepository: NewVesselRepository(pool, log),
		pool:             pool,
	}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}
