package client

import (
	"context"

	"shipyard/internal/domain/vessel"
)

// Result - итог операции: полезная нагрузка сервера или ошибка
type Result struct {
	Vessel *vessel.Vessel
	Err    error
}

// Task завершается после того, как результат применён к состоянию экрана
type Task struct {
	done chan struct{}
	res  Result
}

func newTask() *Task {
	return &Task{done: make(chan struct{})}
}

func doneTask(res Result) *Task {
	t := newTask()
	t.finish(res)
	return t
}

func (t *Task) finish(res Result) {
	t.res = res
	close(t.done)
}

func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait блокируется до завершения задачи или отмены ctx.
func (t *Task) Wait(ctx context.Context) Result {
	select {
	case <-t.done:
		return t.res
	case <-ctx.Done():
		return Result{Err: ctx.Err()}
	}
}
