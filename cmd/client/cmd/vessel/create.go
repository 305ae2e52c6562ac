package vessel

import (
	"fmt"

	"github.com/spf13/cobra"

	"shipyard/internal/app/client/render"
	"shipyard/internal/domain/vessel"
)

var createForm vessel.Form

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Crear embarcación",
	Example: `  shipyard create --nombre "Barco A" --capacidad 10 \
    --descripcion "Pesquero" --fecha 2024-01-01`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		view, _, err := start(cmd)
		if err != nil {
			return err
		}

		res := view.Create(cmd.Context(), createForm).Wait(cmd.Context())
		if res.Err != nil {
			return problem(cmd.ErrOrStderr(), res.Err)
		}

		if jsonFlag(cmd) {
			return render.JSON(cmd.OutOrStdout(), []vessel.Vessel{*res.Vessel})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Embarcación creada: #%d %s\n", res.Vessel.ID, res.Vessel.Name)
		return nil
	},
}

func init() {
	formFlags(CreateCmd, &createForm)
}
