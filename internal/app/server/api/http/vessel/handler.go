package vessel

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"shipyard/internal/domain/vessel"
	"shipyard/internal/utils/logger"
)

type Handler struct {
	service    vessel.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service vessel.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	vessels, err := h.service.List(ctx)
	if err != nil {
		return nil, h.apiError(err)
	}

	body := make([]vesselResponse, len(vessels))
	for i, v := range vessels {
		body[i] = toResponse(v)
	}

	return &listOutput{Body: body}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*output, error) {
	v, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, h.apiError(err)
	}

	return &output{Body: toResponse(*v)}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	in, err := input.Body.toInput()
	if err != nil {
		return nil, h.apiError(err)
	}

	v, err := h.service.Create(ctx, in)
	if err != nil {
		return nil, h.apiError(err)
	}

	return &output{Body: toResponse(*v)}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	in, err := input.Body.toInput()
	if err != nil {
		return nil, h.apiError(err)
	}

	v, err := h.service.Update(ctx, input.ID, in)
	if err != nil {
		return nil, h.apiError(err)
	}

	return &output{Body: toResponse(*v)}, nil
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*struct{}, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, h.apiError(err)
	}
	return nil, nil
}

// apiError переводит доменные ошибки в ответы huma
func (h *Handler) apiError(err error) error {
	var verrs vessel.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		details := make([]error, len(verrs))
		for i, e := range verrs {
			details[i] = &huma.ErrorDetail{
				Message:  e.Message,
				Location: "body." + e.Field,
			}
		}
		return huma.Error422UnprocessableEntity(verrs.Error(), details...)
	case errors.Is(err, vessel.ErrNotFound):
		return huma.Error404NotFound("embarcación no encontrada")
	default:
		if h.log != nil {
			h.log.Error("request failed", logger.Err(err))
		}
		return huma.Error500InternalServerError("internal error")
	}
}
