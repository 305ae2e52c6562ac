package vessel

import (
	"strconv"
)

// Vessel - запись об embarcación, как её отдаёт сервер
type Vessel struct {
	ID            int     `json:"id"`
	Name          string  `json:"nombre"`
	Capacity      float64 `json:"capacidad"`
	Description   string  `json:"descripcion"`
	ScheduledDate Date    `json:"fechaProgramada"`
}

// Input - тело запроса на создание и обновление (всё кроме id)
type Input struct {
	Name          string  `json:"nombre"`
	Capacity      float64 `json:"capacidad"`
	Description   string  `json:"descripcion"`
	ScheduledDate Date    `json:"fechaProgramada"`
}

// Form - значения полей формы в том виде, в каком их ввёл пользователь
type Form struct {
	Name          string
	Capacity      string
	Description   string
	ScheduledDate string
}

func (v Vessel) Input() Input {
	return Input{
		Name:          v.Name,
		Capacity:      v.Capacity,
		Description:   v.Description,
		ScheduledDate: v.ScheduledDate,
	}
}

// Form заполняет форму редактирования текущими значениями записи
func (v Vessel) Form() Form {
	return Form{
		Name:          v.Name,
		Capacity:      FormatCapacity(v.Capacity),
		Description:   v.Description,
		ScheduledDate: v.ScheduledDate.String(),
	}
}

func (in Input) Vessel(id int) Vessel {
	return Vessel{
		ID:            id,
		Name:          in.Name,
		Capacity:      in.Capacity,
		Description:   in.Description,
		ScheduledDate: in.ScheduledDate,
	}
}

// IsEmpty reports whether no field has been filled in.
func (f Form) IsEmpty() bool {
	return f == Form{}
}

// FormatCapacity prints capacity without trailing zeros: 10 -> "10", 12.5 -> "12.5".
func FormatCapacity(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
