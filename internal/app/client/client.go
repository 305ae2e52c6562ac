package client

import (
	"context"
	"fmt"
	gosync "sync"

	"golang.org/x/exp/slog"

	"shipyard/internal/app/client/config"
)

// App связывает конфигурацию, REST клиент и экран управления записями
type App struct {
	config *config.Config
	log    *slog.Logger
	api    *HTTPClient
	view   *View
	wg     gosync.WaitGroup
	cancel context.CancelFunc
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("конфигурация не задана")
	}

	api := NewHTTPClient(cfg.BaseURL(), cfg.RequestTimeout, log)

	return &App{
		config: cfg,
		log:    log,
		api:    api,
		view:   NewView(api, log),
	}, nil
}

// Start запускает цикл экрана и первичную загрузку списка
func (a *App) Start(ctx context.Context) *Task {
	runCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		_ = a.view.Run(runCtx)
	}()

	a.log.Debug("Экран запущен", "server", a.config.BaseURL())

	return a.view.Load(ctx)
}

func (a *App) View() *View {
	return a.view
}

func (a *App) Ping(ctx context.Context) error {
	return a.api.HealthCheck(ctx)
}

// Close останавливает цикл экрана и ждёт его завершения
func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()
}
