package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	// драйвер sqlite3 для database/sql
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"shipyard/internal/infrastructure/migration"
)

type Storage struct {
	*VesselRepository
	db *sql.DB
}

// New открывает файл базы и накатывает встроенные миграции
func New(ctx context.Context, path string, log *slog.Logger) (*Storage, error) {
	mg := migration.NewMigration(migration.SQLite, "sqlite3://"+path, nil)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite не любит параллельных писателей
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &Storage{
		VesselRepository: NewVesselRepository(db, log),
		db:               db,
	}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.db.Close()
}
