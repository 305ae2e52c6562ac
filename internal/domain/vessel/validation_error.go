package vessel

import (
	"strings"
)

// FieldError - сообщение валидации, привязанное к полю формы
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

type ValidationErrors []FieldError

func (errs ValidationErrors) Error() string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap позволяет проверять errors.Is(err, ErrInvalidData)
func (errs ValidationErrors) Unwrap() error {
	return ErrInvalidData
}

// Message возвращает сообщение для поля, если оно есть.
func (errs ValidationErrors) Message(field string) (string, bool) {
	for _, e := range errs {
		if e.Field == field {
			return e.Message, true
		}
	}
	return "", false
}
