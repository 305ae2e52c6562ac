package client

import (
	"context"
	"errors"

	"golang.org/x/exp/slog"

	"shipyard/internal/domain/vessel"
	"shipyard/internal/utils/logger"
)

var (
	ErrViewClosed   = errors.New("view is not running")
	ErrNoEditTarget = errors.New("no vessel is being edited")
)

// Collaborator - REST сервис, владеющий записями
type Collaborator interface {
	List(ctx context.Context) ([]vessel.Vessel, error)
	Create(ctx context.Context, in vessel.Input) (*vessel.Vessel, error)
	Update(ctx context.Context, id int, in vessel.Input) (*vessel.Vessel, error)
	Delete(ctx context.Context, id int) error
}

// View держит состояние экрана управления записями.
//
// Состояние принадлежит одной горутине (Run). Сетевые вызовы выполняются
// в отдельных горутинах, а их результаты ставятся в очередь и применяются
// в порядке прихода. Порядок завершения параллельных запросов не
// гарантируется, ошибки транспорта только логируются и возвращаются в Result.
type View struct {
	api   Collaborator
	log   *slog.Logger
	queue chan func(*State)
	stop  chan struct{}
	state State
}

const queueSize = 64

func NewView(api Collaborator, log *slog.Logger) *View {
	return &View{
		api:   api,
		log:   log.With("component", "vessel_view"),
		queue: make(chan func(*State), queueSize),
		stop:  make(chan struct{}),
	}
}

// Run применяет задачи из очереди, пока ctx не отменён. Вызывается один раз.
func (v *View) Run(ctx context.Context) error {
	defer close(v.stop)

	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-v.queue:
			fn(&v.state)
		}
	}
}

// Snapshot возвращает копию текущего состояния
func (v *View) Snapshot(ctx context.Context) (State, error) {
	ch := make(chan State, 1)
	if !v.enqueue(func(s *State) { ch <- s.clone() }) {
		return State{}, ErrViewClosed
	}

	select {
	case st := <-ch:
		return st, nil
	case <-ctx.Done():
		return State{}, ctx.Err()
	case <-v.stop:
		return State{}, ErrViewClosed
	}
}

// Load запрашивает всю коллекцию и заменяет ею локальный список.
// При ошибке состояние не меняется, повторов нет.
func (v *View) Load(ctx context.Context) *Task {
	t := newTask()

	go func() {
		records, err := v.api.List(ctx)
		v.complete(t, func(s *State) Result {
			if err != nil {
				v.log.Error("failed to load vessels", logger.Err(err))
				return Result{Err: err}
			}
			s.replaceAll(records)
			v.log.Debug("vessels loaded", "count", len(records))
			return Result{}
		})
	}()

	return t
}

// Create проверяет форму и, если она валидна, отправляет POST.
// Успех добавляет запись сервера в конец списка и очищает форму;
// при любой ошибке форма сохраняет введённые значения.
func (v *View) Create(ctx context.Context, form vessel.Form) *Task {
	t := newTask()

	ok := v.enqueue(func(s *State) {
		s.Draft = form

		in, err := form.Parse()
		if err != nil {
			v.log.Debug("create form rejected", logger.Err(err))
			t.finish(Result{Err: err})
			return
		}

		go func() {
			created, err := v.api.Create(ctx, in)
			v.complete(t, func(s *State) Result {
				if err != nil {
					v.log.Error("failed to create vessel", "nombre", in.Name, logger.Err(err))
					return Result{Err: err}
				}
				s.add(*created)
				s.Draft = vessel.Form{}
				return Result{Vessel: created}
			})
		}()
	})
	if !ok {
		t.finish(Result{Err: ErrViewClosed})
	}

	return t
}

// BeginEdit открывает диалог для записи id. Неизвестный id ничего не меняет.
func (v *View) BeginEdit(id int) *Task {
	t := newTask()

	ok := v.enqueue(func(s *State) {
		rec, found := s.Find(id)
		if !found {
			t.finish(Result{Err: vessel.ErrNotFound})
			return
		}
		s.openDialog(rec)
		t.finish(Result{Vessel: &rec})
	})
	if !ok {
		t.finish(Result{Err: ErrViewClosed})
	}

	return t
}

// CommitEdit проверяет форму редактирования и отправляет PUT для текущей цели.
// Успех заменяет запись на месте и закрывает диалог; при ошибке диалог остаётся открытым.
func (v *View) CommitEdit(ctx context.Context, form vessel.Form) *Task {
	t := newTask()

	ok := v.enqueue(func(s *State) {
		if s.Editing == nil {
			t.finish(Result{Err: ErrNoEditTarget})
			return
		}
		s.EditForm = form

		in, err := form.Parse()
		if err != nil {
			v.log.Debug("edit form rejected", "vessel_id", s.Editing.ID, logger.Err(err))
			t.finish(Result{Err: err})
			return
		}

		id := s.Editing.ID
		go func() {
			updated, err := v.api.Update(ctx, id, in)
			v.complete(t, func(s *State) Result {
				if err != nil {
					v.log.Error("failed to update vessel", "vessel_id", id, logger.Err(err))
					return Result{Err: err}
				}
				s.replace(id, *updated)
				s.closeDialog()
				return Result{Vessel: updated}
			})
		}()
	})
	if !ok {
		t.finish(Result{Err: ErrViewClosed})
	}

	return t
}

// CancelEdit закрывает диалог без запроса к серверу
func (v *View) CancelEdit() *Task {
	t := newTask()

	ok := v.enqueue(func(s *State) {
		s.closeDialog()
		t.finish(Result{})
	})
	if !ok {
		t.finish(Result{Err: ErrViewClosed})
	}

	return t
}

// Delete сразу отправляет DELETE, без подтверждения. Успех убирает запись
// из списка; при ошибке список не меняется.
func (v *View) Delete(ctx context.Context, id int) *Task {
	t := newTask()

	go func() {
		err := v.api.Delete(ctx, id)
		v.complete(t, func(s *State) Result {
			if err != nil {
				v.log.Error("failed to delete vessel", "vessel_id", id, logger.Err(err))
				return Result{Err: err}
			}
			s.remove(id)
			return Result{}
		})
	}()

	return t
}

func (v *View) enqueue(fn func(*State)) bool {
	select {
	case <-v.stop:
		return false
	default:
	}

	select {
	case v.queue <- fn:
		return true
	case <-v.stop:
		return false
	}
}

// complete ставит применение результата в очередь; задача завершается уже внутри цикла
func (v *View) complete(t *Task, apply func(*State) Result) {
	if !v.enqueue(func(s *State) { t.finish(apply(s)) }) {
		t.finish(Result{Err: ErrViewClosed})
	}
}
