package vessel

import (
	"shipyard/internal/domain/vessel"
)

type listOutput struct {
	Body []vesselResponse
}

type createInput struct {
	Body vesselRequest
}

type findInput struct {
	ID int `path:"id" example:"1" doc:"ID de la embarcación"`
}

type updateInput struct {
	ID   int `path:"id" example:"1" doc:"ID de la embarcación"`
	Body vesselRequest
}

type output struct {
	Body vesselResponse
}

type vesselRequest struct {
	Name          string  `json:"nombre" minLength:"1" maxLength:"50" example:"Barco A" doc:"Nombre de la embarcación"`
	Capacity      float64 `json:"capacidad" exclusiveMinimum:"0" example:"10" doc:"Capacidad en toneladas"`
	Description   string  `json:"descripcion" minLength:"1" maxLength:"250" example:"Pesquero de altura" doc:"Descripción"`
	ScheduledDate string  `json:"fechaProgramada" format:"date" example:"2024-01-01" doc:"Fecha programada (AAAA-MM-DD)"`
}

type vesselResponse struct {
	ID            int     `json:"id" example:"1"`
	Name          string  `json:"nombre"`
	Capacity      float64 `json:"capacidad"`
	Description   string  `json:"descripcion"`
	ScheduledDate string  `json:"fechaProgramada" format:"date"`
}

func (r vesselRequest) toInput() (vessel.Input, error) {
	in := vessel.Input{
		Name:        r.Name,
		Capacity:    r.Capacity,
		Description: r.Description,
	}
	if r.ScheduledDate != "" {
		d, err := vessel.ParseDate(r.ScheduledDate)
		if err != nil {
			return vessel.Input{}, vessel.ValidationErrors{{Field: vessel.FieldScheduledDate, Message: vessel.MsgDateInvalid}}
		}
		in.ScheduledDate = d
	}
	return in, nil
}

func toResponse(v vessel.Vessel) vesselResponse {
	return vesselResponse{
		ID:            v.ID,
		Name:          v.Name,
		Capacity:      v.Capacity,
		Description:   v.Description,
		ScheduledDate: v.ScheduledDate.String(),
	}
}
