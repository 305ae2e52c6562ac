package vessel

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const resourcePath = "/api/embarcaciones"

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "embarcaciones-list",
		Method:      http.MethodGet,
		Path:        resourcePath,
		Summary:     "Lista de embarcaciones",
		Tags:        []string{"embarcaciones"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "embarcaciones-create",
		Method:        http.MethodPost,
		Path:          resourcePath,
		Summary:       "Crear embarcación",
		Description:   "Crea una embarcación; el id lo asigna el servidor.",
		Tags:          []string{"embarcaciones"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "embarcaciones-find",
		Method:      http.MethodGet,
		Path:        resourcePath + "/{id}",
		Summary:     "Obtener embarcación",
		Tags:        []string{"embarcaciones"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "embarcaciones-update",
		Method:      http.MethodPut,
		Path:        resourcePath + "/{id}",
		Summary:     "Actualizar embarcación",
		Tags:        []string{"embarcaciones"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "embarcaciones-delete",
		Method:        http.MethodDelete,
		Path:          resourcePath + "/{id}",
		Summary:       "Eliminar embarcación",
		Tags:          []string{"embarcaciones"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
