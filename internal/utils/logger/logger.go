package logger

import (
	"io"
	"os"

	"golang.org/x/exp/slog"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// Options переопределяет вывод и уровень. Пустые поля - значения окружения.
type Options struct {
	Out   io.Writer
	Level string
}

// New собирает логгер под окружение: local - цветной вывод для человека,
// dev - JSON с debug, prod - JSON начиная с info.
func New(env string) *slog.Logger {
	return NewWithOptions(env, Options{})
}

func NewWithOptions(env string, o Options) *slog.Logger {
	out := o.Out
	if out == nil {
		out = os.Stdout
	}

	var level slog.Level
	switch env {
	case envLocal, envDev:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	if o.Level != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(o.Level)); err == nil {
			level = parsed
		}
	}

	if env == envLocal {
		return setupPrettySlog(out, level)
	}

	return slog.New(
		slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}),
	)
}

func setupPrettySlog(out io.Writer, level slog.Level) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	handler := opts.NewPrettyHandler(out)

	return slog.New(handler)
}

// Err - короткая запись ошибки как атрибута
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
