package vessel

import (
	"context"
)

// Repository - хранилище записей на стороне сервера.
// Отсутствующий id сообщается через ErrNotFound.
type Repository interface {
	List(ctx context.Context) ([]Vessel, error)
	Get(ctx context.Context, id int) (*Vessel, error)
	Create(ctx context.Context, in Input) (*Vessel, error)
	Update(ctx context.Context, id int, in Input) (*Vessel, error)
	Delete(ctx context.Context, id int) error
}
