// Package screen - интерактивная одностраничная консоль: таблица записей,
// форма создания и диалог редактирования поверх client.View.
package screen

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"shipyard/internal/app/client"
	"shipyard/internal/app/client/render"
	"shipyard/internal/domain/vessel"
)

var errQuit = errors.New("quit")

type Screen struct {
	view    *client.View
	in      *bufio.Scanner
	out     io.Writer
	colored bool

	errColor *color.Color
	okColor  *color.Color
	dimColor *color.Color
}

func New(view *client.View, in io.Reader, out io.Writer, colored bool) *Screen {
	s := &Screen{
		view:     view,
		in:       bufio.NewScanner(in),
		out:      out,
		colored:  colored,
		errColor: color.New(color.FgRed),
		okColor:  color.New(color.FgGreen),
		dimColor: color.New(color.Faint),
	}
	if !colored {
		s.errColor.DisableColor()
		s.okColor.DisableColor()
		s.dimColor.DisableColor()
	}
	return s
}

// Run рисует экран и обрабатывает команды до quit или конца ввода
func (s *Screen) Run(ctx context.Context) error {
	if err := s.render(ctx); err != nil {
		return err
	}
	s.help()

	for {
		prompt, err := s.prompt(ctx)
		if err != nil {
			return err
		}
		fmt.Fprint(s.out, prompt)

		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}

		err = s.exec(ctx, s.in.Text())
		switch {
		case errors.Is(err, errQuit):
			return nil
		case errors.Is(err, client.ErrViewClosed), errors.Is(err, context.Canceled):
			return err
		case err != nil:
			s.report(err)
		}

		if err := s.render(ctx); err != nil {
			return err
		}
	}
}

func (s *Screen) exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch strings.ToLower(fields[0]) {
	case "help", "?":
		s.help()
		return nil
	case "quit", "exit", "q":
		return errQuit
	case "ls", "reload":
		return s.view.Load(ctx).Wait(ctx).Err
	case "add":
		return s.add(ctx)
	case "edit":
		id, err := parseID(fields)
		if err != nil {
			return err
		}
		return s.edit(ctx, id)
	case "save":
		return s.save(ctx)
	case "cancel":
		return s.view.CancelEdit().Wait(ctx).Err
	case "rm", "delete":
		id, err := parseID(fields)
		if err != nil {
			return err
		}
		if err := s.view.Delete(ctx, id).Wait(ctx).Err; err != nil {
			return err
		}
		s.okColor.Fprintf(s.out, "Embarcación %d eliminada\n", id)
		return nil
	default:
		return fmt.Errorf("comando desconocido: %s", fields[0])
	}
}

func (s *Screen) add(ctx context.Context) error {
	st, err := s.view.Snapshot(ctx)
	if err != nil {
		return err
	}

	form, ok := s.readForm(st.Draft)
	if !ok {
		return errQuit
	}

	res := s.view.Create(ctx, form).Wait(ctx)
	if res.Err != nil {
		return res.Err
	}
	s.okColor.Fprintf(s.out, "Embarcación %d añadida\n", res.Vessel.ID)
	return nil
}

func (s *Screen) edit(ctx context.Context, id int) error {
	res := s.view.BeginEdit(id).Wait(ctx)
	if errors.Is(res.Err, vessel.ErrNotFound) {
		return fmt.Errorf("embarcación %d no encontrada", id)
	}
	if res.Err != nil {
		return res.Err
	}
	return s.save(ctx)
}

// save заполняет форму диалога и отправляет её; при ошибке диалог остаётся открытым
func (s *Screen) save(ctx context.Context) error {
	st, err := s.view.Snapshot(ctx)
	if err != nil {
		return err
	}
	if !st.DialogOpen || st.Editing == nil {
		return client.ErrNoEditTarget
	}

	fmt.Fprintf(s.out, "Editar embarcación %d\n", st.Editing.ID)
	form, ok := s.readForm(st.EditForm)
	if !ok {
		return errQuit
	}

	res := s.view.CommitEdit(ctx, form).Wait(ctx)
	if res.Err != nil {
		return res.Err
	}
	s.okColor.Fprintf(s.out, "Embarcación %d actualizada\n", res.Vessel.ID)
	return nil
}

// readForm спрашивает каждое поле; пустой ввод оставляет текущее значение
func (s *Screen) readForm(current vessel.Form) (vessel.Form, bool) {
	form := current
	fields := []struct {
		label string
		value *string
	}{
		{"Nombre", &form.Name},
		{"Capacidad (T)", &form.Capacity},
		{"Descripción", &form.Description},
		{"Fecha Programada (AAAA-MM-DD)", &form.ScheduledDate},
	}

	for _, f := range fields {
		if *f.value != "" {
			fmt.Fprintf(s.out, "%s %s: ", f.label, s.dimColor.Sprintf("[%s]", *f.value))
		} else {
			fmt.Fprintf(s.out, "%s: ", f.label)
		}
		if !s.in.Scan() {
			return vessel.Form{}, false
		}
		if text := strings.TrimSpace(s.in.Text()); text != "" {
			*f.value = text
		}
	}

	return form, true
}

func (s *Screen) render(ctx context.Context) error {
	st, err := s.view.Snapshot(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out)
	return render.Table(s.out, st.Records, s.colored)
}

func (s *Screen) prompt(ctx context.Context) (string, error) {
	st, err := s.view.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	if st.DialogOpen && st.Editing != nil {
		return fmt.Sprintf("embarcaciones [editando #%d]> ", st.Editing.ID), nil
	}
	return "embarcaciones> ", nil
}

func (s *Screen) report(err error) {
	var verrs vessel.ValidationErrors
	if errors.As(err, &verrs) {
		for _, e := range verrs {
			s.errColor.Fprintf(s.out, "  %s: %s\n", e.Field, e.Message)
		}
		return
	}
	s.errColor.Fprintf(s.out, "Error: %v\n", err)
}

func (s *Screen) help() {
	fmt.Fprintln(s.out, "Comandos: add | edit <id> | save | cancel | rm <id> | reload | help | quit")
}

func parseID(fields []string) (int, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("%s: falta el id", fields[0])
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("id inválido %q", fields[1])
	}
	return id, nil
}
