package vessel

import (
	"errors"
)

var (
	ErrNotFound    = errors.New("vessel not found")
	ErrInvalidData = errors.New("invalid vessel data")
)
