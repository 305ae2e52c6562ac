package vessel

import (
	"fmt"

	"github.com/spf13/cobra"
)

var DeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Eliminar embarcación",
	Long:    `Удаляет запись сразу, без подтверждения.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		view, _, err := start(cmd)
		if err != nil {
			return err
		}

		if res := view.Delete(cmd.Context(), id).Wait(cmd.Context()); res.Err != nil {
			return fmt.Errorf("no se pudo eliminar #%d: %w", id, res.Err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Embarcación #%d eliminada\n", id)
		return nil
	},
}
