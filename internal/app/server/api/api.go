// GET    /api/v1/health            # Проверка сервиса и хранилища
// GET    /api/embarcaciones        # Список
// POST   /api/embarcaciones        # Создать
// GET    /api/embarcaciones/{id}   # Получить
// PUT    /api/embarcaciones/{id}   # Обновить
// DELETE /api/embarcaciones/{id}   # Удалить

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	healthAPI "shipyard/internal/app/server/api/http/health"
	"shipyard/internal/app/server/api/http/middleware"
	"shipyard/internal/app/server/api/http/middleware/logger"
	"shipyard/internal/app/server/api/http/middleware/requestid"
	vesselAPI "shipyard/internal/app/server/api/http/vessel"
	"shipyard/internal/domain/vessel"
	"shipyard/internal/infrastructure/storage"
)

type Handlers struct {
	Health *healthAPI.Handler
	Vessel *vesselAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(store storage.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Shipyard API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(store, log)
	h.Health.SetupRoutes(API)
	h.Vessel.SetupRoutes(API)

	return mux
}

func handlers(store storage.Storage, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer(requestid.Middleware(), loggerMW.Middleware())

	healthHandler := healthAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	vesselService := vessel.NewService(store, log)
	vesselHandler := vesselAPI.NewHandler(vesselService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Vessel: vesselHandler,
	}
}
