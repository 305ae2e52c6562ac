package vessel

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shipyard/internal/app/client/render"
	"shipyard/internal/domain/vessel"
)

var editForm vessel.Form

var EditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Editar embarcación",
	Long: `Открывает диалог редактирования записи <id>, подставляет переданные
флаги поверх текущих значений и сохраняет. Незаданные поля не меняются.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		view, _, err := start(cmd)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if res := view.BeginEdit(id).Wait(ctx); res.Err != nil {
			if errors.Is(res.Err, vessel.ErrNotFound) {
				return fmt.Errorf("embarcación #%d no encontrada", id)
			}
			return res.Err
		}

		st, err := view.Snapshot(ctx)
		if err != nil {
			return err
		}
		form := overlay(cmd, st.EditForm)

		res := view.CommitEdit(ctx, form).Wait(ctx)
		if res.Err != nil {
			return problem(cmd.ErrOrStderr(), res.Err)
		}

		if jsonFlag(cmd) {
			return render.JSON(cmd.OutOrStdout(), []vessel.Vessel{*res.Vessel})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Embarcación #%d actualizada\n", res.Vessel.ID)
		return nil
	},
}

// overlay подставляет явно заданные флаги поверх текущих значений формы
func overlay(cmd *cobra.Command, current vessel.Form) vessel.Form {
	flags := cmd.Flags()
	if flags.Changed("nombre") {
		current.Name = editForm.Name
	}
	if flags.Changed("capacidad") {
		current.Capacity = editForm.Capacity
	}
	if flags.Changed("descripcion") {
		current.Description = editForm.Description
	}
	if flags.Changed("fecha") {
		current.ScheduledDate = editForm.ScheduledDate
	}
	return current
}

func init() {
	formFlags(EditCmd, &editForm)
}
