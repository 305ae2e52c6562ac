package vessel

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLen        = 50
	MaxDescriptionLen = 250
)

// Имена полей совпадают с JSON-ключами, чтобы сообщения формы и ошибки API
// ссылались на одно и то же поле.
const (
	FieldName          = "nombre"
	FieldCapacity      = "capacidad"
	FieldDescription   = "descripcion"
	FieldScheduledDate = "fechaProgramada"
)

const (
	MsgNameRequired        = "El nombre no puede ser nulo"
	MsgNameTooLong         = "El nombre no puede tener más de 50 caracteres"
	MsgCapacityRequired    = "La capacidad no puede ser nula"
	MsgCapacityNotNumber   = "La capacidad debe ser un número"
	MsgCapacityNotPositive = "La capacidad debe ser positiva"
	MsgDescriptionRequired = "La descripción no puede ser nula"
	MsgDescriptionTooLong  = "La descripción no puede tener más de 250 caracteres"
	MsgDateRequired        = "La fecha no puede ser nula"
	MsgDateInvalid         = "La fecha debe tener el formato AAAA-MM-DD"
)

// Parse проверяет значения формы и переводит их в тело запроса.
// При нарушении правил возвращает ValidationErrors с одним сообщением на поле.
func (f Form) Parse() (Input, error) {
	var (
		in   Input
		errs ValidationErrors
	)

	in.Name = f.Name
	if msg := checkText(f.Name, MaxNameLen, MsgNameRequired, MsgNameTooLong); msg != "" {
		errs = append(errs, FieldError{Field: FieldName, Message: msg})
	}

	capacity := strings.TrimSpace(f.Capacity)
	switch {
	case capacity == "":
		errs = append(errs, FieldError{Field: FieldCapacity, Message: MsgCapacityRequired})
	default:
		c, err := strconv.ParseFloat(strings.ReplaceAll(capacity, ",", "."), 64)
		if err != nil || math.IsNaN(c) || math.IsInf(c, 0) {
			errs = append(errs, FieldError{Field: FieldCapacity, Message: MsgCapacityNotNumber})
			break
		}
		in.Capacity = c
		if c <= 0 {
			errs = append(errs, FieldError{Field: FieldCapacity, Message: MsgCapacityNotPositive})
		}
	}

	in.Description = f.Description
	if msg := checkText(f.Description, MaxDescriptionLen, MsgDescriptionRequired, MsgDescriptionTooLong); msg != "" {
		errs = append(errs, FieldError{Field: FieldDescription, Message: msg})
	}

	switch {
	case strings.TrimSpace(f.ScheduledDate) == "":
		errs = append(errs, FieldError{Field: FieldScheduledDate, Message: MsgDateRequired})
	default:
		d, err := ParseDate(f.ScheduledDate)
		if err != nil {
			errs = append(errs, FieldError{Field: FieldScheduledDate, Message: MsgDateInvalid})
			break
		}
		in.ScheduledDate = d
	}

	if len(errs) > 0 {
		return Input{}, errs
	}
	return in, nil
}

// Validate проверяет уже типизированное тело запроса (используется сервером).
func (in Input) Validate() error {
	var errs ValidationErrors

	if msg := checkText(in.Name, MaxNameLen, MsgNameRequired, MsgNameTooLong); msg != "" {
		errs = append(errs, FieldError{Field: FieldName, Message: msg})
	}
	if math.IsNaN(in.Capacity) || in.Capacity <= 0 {
		errs = append(errs, FieldError{Field: FieldCapacity, Message: MsgCapacityNotPositive})
	}
	if msg := checkText(in.Description, MaxDescriptionLen, MsgDescriptionRequired, MsgDescriptionTooLong); msg != "" {
		errs = append(errs, FieldError{Field: FieldDescription, Message: msg})
	}
	if in.ScheduledDate.IsZero() {
		errs = append(errs, FieldError{Field: FieldScheduledDate, Message: MsgDateRequired})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func checkText(s string, maxLen int, requiredMsg, tooLongMsg string) string {
	if strings.TrimSpace(s) == "" {
		return requiredMsg
	}
	if utf8.RuneCountInString(s) > maxLen {
		return tooLongMsg
	}
	return ""
}
