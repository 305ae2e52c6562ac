package requestid

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/xid"
)

// Header заголовок, в котором передается идентификатор запроса
const Header = "X-Request-ID"

type ctxKey struct{}

// FromContext возвращает идентификатор запроса, если он есть
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Middleware выставляет X-Request-ID: берет входящий или генерирует новый
func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		id := ctx.Header(Header)
		if id == "" {
			id = xid.New().String()
		}
		ctx.SetHeader(Header, id)

		next(huma.WithValue(ctx, ctxKey{}, id))
	}
}
