package client

import (
	"shipyard/internal/domain/vessel"
)

// State - всё, что показывает экран: таблица, цель редактирования,
// видимость диалога и содержимое обеих форм.
type State struct {
	Records    []vessel.Vessel
	Editing    *vessel.Vessel
	DialogOpen bool
	Draft      vessel.Form
	EditForm   vessel.Form
}

func (s *State) clone() State {
	out := *s
	out.Records = append([]vessel.Vessel(nil), s.Records...)
	if s.Editing != nil {
		editing := *s.Editing
		out.Editing = &editing
	}
	return out
}

// Find returns the record with the given id, if it is displayed.
func (s *State) Find(id int) (vessel.Vessel, bool) {
	for _, v := range s.Records {
		if v.ID == id {
			return v, true
		}
	}
	return vessel.Vessel{}, false
}

func (s *State) replaceAll(records []vessel.Vessel) {
	s.Records = append([]vessel.Vessel(nil), records...)
}

func (s *State) add(v vessel.Vessel) {
	s.Records = append(s.Records, v)
}

// replace подменяет записи с id на v, сохраняя порядок
func (s *State) replace(id int, v vessel.Vessel) int {
	n := 0
	for i := range s.Records {
		if s.Records[i].ID == id {
			s.Records[i] = v
			n++
		}
	}
	return n
}

func (s *State) remove(id int) int {
	kept := s.Records[:0]
	n := 0
	for _, v := range s.Records {
		if v.ID == id {
			n++
			continue
		}
		kept = append(kept, v)
	}
	// обнуляем хвост, чтобы не держать ссылки на удалённые строки
	for i := len(kept); i < len(s.Records); i++ {
		s.Records[i] = vessel.Vessel{}
	}
	s.Records = kept
	return n
}

func (s *State) openDialog(v vessel.Vessel) {
	s.Editing = &v
	s.EditForm = v.Form()
	s.DialogOpen = true
}

func (s *State) closeDialog() {
	s.Editing = nil
	s.EditForm = vessel.Form{}
	s.DialogOpen = false
}
