package vessel

import (
	"context"
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"shipyard/internal/app/client/screen"
)

var ShellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Pantalla interactiva de embarcaciones",
	Long: `Интерактивный экран: таблица записей перерисовывается после каждой
команды (add, edit <id>, save, cancel, rm <id>, reload, quit).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		// экран открывается и с пустой таблицей, reload повторит загрузку
		ctx := cmd.Context()
		if res := app.Start(ctx).Wait(ctx); res.Err != nil {
			color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "No se pudo cargar la lista: %v\n", res.Err)
		}

		colored := term.IsTerminal(int(os.Stdout.Fd())) && !color.NoColor
		err = screen.New(app.View(), cmd.InOrStdin(), cmd.OutOrStdout(), colored).Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}
