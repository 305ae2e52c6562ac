package vessel

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"shipyard/internal/app/client/render"
	"shipyard/internal/domain/vessel"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista de embarcaciones",
	Long: `Загружает список с сервера и печатает его.

Форматы: simple, table, json, csv. Глобальный --json равносилен --format json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, st, err := start(cmd)
		if err != nil {
			return err
		}

		format := listFormat
		if jsonFlag(cmd) {
			format = "json"
		}

		out := cmd.OutOrStdout()
		switch format {
		case "json":
			return render.JSON(out, st.Records)
		case "csv":
			return render.CSV(out, st.Records)
		case "table":
			return render.Table(out, st.Records, term.IsTerminal(int(os.Stdout.Fd())))
		case "simple":
			return printSimple(cmd, st.Records)
		default:
			return fmt.Errorf("formato desconocido %q", format)
		}
	},
}

func printSimple(cmd *cobra.Command, records []vessel.Vessel) error {
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		_, err := fmt.Fprintln(out, "No hay embarcaciones")
		return err
	}

	for _, v := range records {
		fmt.Fprintf(out, "#%d %s (%s), %s\n   %s\n",
			v.ID, v.Name, render.Capacity(v.Capacity), v.ScheduledDate, v.Description)
	}
	return nil
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "formato de salida (simple, table, json, csv)")
}
