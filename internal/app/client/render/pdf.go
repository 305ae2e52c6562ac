package render

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"shipyard/internal/domain/vessel"
)

// ширины колонок в сетке из 12
var pdfWidths = []int{1, 3, 2, 4, 2}

// PDF строит документ с таблицей записей
func PDF(title string, records []vessel.Vessel) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		WithPageNumber().
		Build()

	m := maroto.New(cfg)

	headerCell := &props.Cell{BackgroundColor: &props.Color{Red: 200, Green: 200, Blue: 200}, BorderType: border.Left | border.Right}
	evenCell := &props.Cell{BackgroundColor: &props.WhiteColor, BorderType: border.Left | border.Right}
	oddCell := &props.Cell{BackgroundColor: &props.Color{Red: 235, Green: 235, Blue: 235}, BorderType: border.Left | border.Right}

	m.AddRow(12,
		text.NewCol(12, title, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Center,
			Top:   2,
		}),
	)

	hs := make([]core.Col, 0, len(Headers))
	for i, h := range Headers {
		hs = append(hs, text.NewCol(pdfWidths[i], h, props.Text{
			Size:  10,
			Style: fontstyle.Bold,
			Align: align.Center,
			Top:   2,
		}).WithStyle(headerCell))
	}
	m.AddRows(row.New(9).Add(hs...))

	for i, v := range records {
		cell := evenCell
		if i&1 == 1 {
			cell = oddCell
		}
		cs := make([]core.Col, 0, len(Headers))
		for j, c := range Row(v) {
			cs = append(cs, text.NewCol(pdfWidths[j], c, props.Text{
				Size:  9,
				Top:   2,
				Left:  1,
				Right: 1,
			}).WithStyle(cell))
		}
		m.AddRows(row.New(9).Add(cs...))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}
