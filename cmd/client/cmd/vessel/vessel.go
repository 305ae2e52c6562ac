// Package vessel - команды CLI поверх экрана управления записями
package vessel

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"shipyard/cmd/client/cmd/types"
	"shipyard/internal/app/client"
	"shipyard/internal/domain/vessel"
)

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

func jsonFlag(cmd *cobra.Command) bool {
	v, _ := cmd.Context().Value(types.JSONOutputKey).(bool)
	return v
}

// start запускает экран и дожидается первичной загрузки списка
func start(cmd *cobra.Command) (*client.View, client.State, error) {
	app, err := appFrom(cmd)
	if err != nil {
		return nil, client.State{}, err
	}

	ctx := cmd.Context()
	if res := app.Start(ctx).Wait(ctx); res.Err != nil {
		return nil, client.State{}, fmt.Errorf("no se pudo cargar la lista: %w", res.Err)
	}

	st, err := app.View().Snapshot(ctx)
	if err != nil {
		return nil, client.State{}, err
	}
	return app.View(), st, nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido %q", arg)
	}
	return id, nil
}

// problem печатает ошибки валидации по полям и возвращает короткую ошибку для cobra
func problem(w io.Writer, err error) error {
	var verrs vessel.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	red := color.New(color.FgRed)
	for _, e := range verrs {
		red.Fprintf(w, "  %s: %s\n", e.Field, e.Message)
	}
	return vessel.ErrInvalidData
}

func formFlags(cmd *cobra.Command, f *vessel.Form) {
	cmd.Flags().StringVar(&f.Name, "nombre", "", "nombre de la embarcación (máx. 50)")
	cmd.Flags().StringVar(&f.Capacity, "capacidad", "", "capacidad en toneladas (> 0)")
	cmd.Flags().StringVar(&f.Description, "descripcion", "", "descripción (máx. 250)")
	cmd.Flags().StringVar(&f.ScheduledDate, "fecha", "", "fecha programada AAAA-MM-DD")
}
