package vessel

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"shipyard/internal/app/client/render"
)

var (
	exportFormat string
	exportOut    string
)

const pdfTitle = "Embarcaciones"

var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exportar la lista (csv, json, pdf)",
	Long: `Выгружает текущий список в файл. Без --out csv и json пишутся в stdout,
для pdf файл обязателен.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if exportFormat == "pdf" && exportOut == "" {
			return fmt.Errorf("para pdf hace falta --out")
		}

		_, st, err := start(cmd)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		switch exportFormat {
		case "csv":
			err = render.CSV(&buf, st.Records)
		case "json":
			err = render.JSON(&buf, st.Records)
		case "pdf":
			var doc []byte
			doc, err = render.PDF(pdfTitle, st.Records)
			buf.Write(doc)
		default:
			return fmt.Errorf("formato desconocido %q", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("export %s: %w", exportFormat, err)
		}

		if exportOut == "" {
			_, err = io.Copy(cmd.OutOrStdout(), &buf)
			return err
		}
		if err := os.WriteFile(exportOut, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", exportOut, err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "%d embarcaciones exportadas a %s\n", len(st.Records), exportOut)
		return nil
	},
}

func init() {
	ExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "formato (csv, json, pdf)")
	ExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "archivo de salida")
}
