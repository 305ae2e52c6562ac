package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container собирает мидлвари для очередной группы операций.
// Общие мидлвари идут первыми в каждой группе.
type Container struct {
	common huma.Middlewares
	group  huma.Middlewares
}

// NewContainer создает контейнер с общими мидлварями
func NewContainer(common ...func(huma.Context, func(huma.Context))) *Container {
	return &Container{
		common: common,
	}
}

// Add добавляет мидлварь в текущую группу
func (mc *Container) Add(middleware func(ctx huma.Context, next func(huma.Context))) {
	mc.group = append(mc.group, middleware)
}

// GetAllAndClear возвращает общие мидлвари и мидлвари группы, затем очищает группу
func (mc *Container) GetAllAndClear() huma.Middlewares {
	result := make(huma.Middlewares, 0, len(mc.common)+len(mc.group))
	result = append(result, mc.common...)
	result = append(result, mc.group...)
	mc.group = nil
	return result
}
