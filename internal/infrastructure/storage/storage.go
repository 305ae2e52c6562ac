package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/exp/slog"

	"shipyard/internal/domain/vessel"
	"shipyard/internal/infrastructure/storage/postgres"
	"shipyard/internal/infrastructure/storage/sqlite"
)

// Storage - репозиторий записей плюс управление соединением
type Storage interface {
	vessel.Repository
	Ping(ctx context.Context) error
	Close() error
}

// Open выбирает драйвер по схеме DATABASE_URI:
// postgres://, postgresql:// - pgx; sqlite://path, file:path - sqlite.
func Open(ctx context.Context, uri string, log *slog.Logger) (Storage, error) {
	switch {
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		_, rest, _ := strings.Cut(uri, "://")
		s, err := postgres.New(ctx, uri, "pgx5://"+rest, log)
		if err != nil {
			return nil, fmt.Errorf("open postgres %s: %w", redact(uri), err)
		}
		return s, nil
	case strings.HasPrefix(uri, "sqlite://"), strings.HasPrefix(uri, "file:"):
		s, err := sqlite.New(ctx, sqlitePath(uri), log)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", uri, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported DATABASE_URI scheme: %q", redact(uri))
	}
}

// sqlitePath отбрасывает схему и параметры строки подключения
func sqlitePath(uri string) string {
	path := strings.TrimPrefix(strings.TrimPrefix(uri, "sqlite://"), "file:")
	path, _, _ = strings.Cut(path, "?")
	return path
}

// redact прячет пароль, чтобы DSN можно было писать в лог
func redact(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "<invalid>"
	}
	return u.Redacted()
}
