// Package render выводит коллекцию записей: таблица для терминала,
// JSON, CSV и PDF для экспорта.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/fatih/color"

	"shipyard/internal/domain/vessel"
)

// Headers - заголовки колонок таблицы
var Headers = []string{"ID", "Nombre", "Capacidad (T)", "Descripción", "Fecha Programada"}

const maxDescriptionWidth = 40

// Capacity рендерит вместимость в тоннах: 10 -> "10 T"
func Capacity(c float64) string {
	return vessel.FormatCapacity(c) + " T"
}

// Row returns the display cells of one record.
func Row(v vessel.Vessel) []string {
	return []string{
		strconv.Itoa(v.ID),
		v.Name,
		Capacity(v.Capacity),
		v.Description,
		v.ScheduledDate.String(),
	}
}

// Table печатает записи в порядке коллекции. colored подсвечивает заголовок.
func Table(w io.Writer, records []vessel.Vessel, colored bool) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No hay embarcaciones")
		return err
	}

	header := color.New(color.Bold, color.FgCyan)
	if !colored {
		header.DisableColor()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, h := range Headers {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, header.Sprint(h))
	}
	fmt.Fprintln(tw)

	for _, v := range records {
		cells := Row(v)
		cells[3] = truncate(cells[3], maxDescriptionWidth)
		for i, c := range cells {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, c)
		}
		fmt.Fprintln(tw)
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nTotal: %d\n", len(records))
	return err
}

// JSON пишет коллекцию в формате коллаборатора
func JSON(w io.Writer, records []vessel.Vessel) error {
	if records == nil {
		records = []vessel.Vessel{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

// CSV пишет заголовок и по строке на запись; вместимость без суффикса
func CSV(w io.Writer, records []vessel.Vessel) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", vessel.FieldName, vessel.FieldCapacity, vessel.FieldDescription, vessel.FieldScheduledDate}); err != nil {
		return err
	}
	for _, v := range records {
		if err := cw.Write([]string{
			strconv.Itoa(v.ID),
			v.Name,
			vessel.FormatCapacity(v.Capacity),
			v.Description,
			v.ScheduledDate.String(),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func truncate(s string, length int) string {
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	runes := []rune(s)
	return string(runes[:length-3]) + "..."
}
