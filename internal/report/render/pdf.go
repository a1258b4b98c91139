package render

import (
	"github.com/equiprofile/equiprofile/internal/report/compiler"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const PDFMimeType = "application/pdf"

// Table cells longer than this are cut with an ellipsis so long notes
// cannot blow up the layout.
const maxCellRunes = 28

var (
	bandColor  = props.Color{Red: 34, Green: 79, Blue: 55}
	shadeColor = props.Color{Red: 238, Green: 242, Blue: 239}
	white      = props.Color{Red: 255, Green: 255, Blue: 255}
)

// PDF renders an assembled report document. Layout: colored header band,
// metadata block, optional summary pairs, optional detail table with
// alternating row shading, page-number footer with the generation stamp.
func PDF(doc *compiler.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterFooter(
		row.New(6).Add(
			text.NewCol(12, doc.GeneratedBy, props.Text{Size: 7, Align: align.Left}),
		),
	); err != nil {
		return nil, err
	}

	m.AddRows(
		row.New(16).Add(
			text.NewCol(6, "EquiProfile", props.Text{
				Size:  16,
				Style: fontstyle.Bold,
				Color: &white,
				Top:   4,
				Left:  3,
			}),
			text.NewCol(6, doc.TypeLabel, props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Color: &white,
				Align: align.Right,
				Top:   5,
				Right: 3,
			}),
		).WithStyle(&props.Cell{BackgroundColor: &bandColor}),
	)

	m.AddRow(8, text.NewCol(12, doc.Title, props.Text{
		Size:  13,
		Style: fontstyle.Bold,
		Top:   2,
	}))

	metaCol := col.New(12)
	for i, field := range doc.Meta {
		metaCol.Add(text.New(field.Label+": "+field.Value, props.Text{
			Size: 9,
			Top:  float64(i * 4),
		}))
	}
	m.AddRow(float64(4*len(doc.Meta)+4), metaCol)

	if len(doc.Summary) > 0 {
		m.AddRow(8, text.NewCol(12, "Summary", props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Top:   2,
		}))
		for _, field := range doc.Summary {
			m.AddRow(6,
				text.NewCol(6, field.Label, props.Text{Size: 9}),
				text.NewCol(6, field.Value, props.Text{Size: 9, Align: align.Right}),
			)
		}
	}

	if doc.Details != nil && len(doc.Details.Columns) > 0 {
		addDetailTable(m, doc.Details)
	}

	generated, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return generated.GetBytes(), nil
}

func addDetailTable(m core.Maroto, table *compiler.DetailTable) {
	width := columnWidth(len(table.Columns))

	header := row.New(7)
	for _, column := range table.Columns {
		header.Add(text.NewCol(width, column, props.Text{
			Size:  9,
			Style: fontstyle.Bold,
			Color: &white,
			Top:   1,
			Left:  1,
		}))
	}
	m.AddRows(header.WithStyle(&props.Cell{BackgroundColor: &bandColor}))

	for i, cells := range table.Rows {
		r := row.New(6)
		for _, cell := range cells {
			r.Add(text.NewCol(width, truncateCell(cell), props.Text{
				Size: 8,
				Top:  1,
				Left: 1,
			}))
		}
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: &shadeColor})
		}
		m.AddRows(r)
	}
}

func columnWidth(columns int) int {
	if columns <= 0 {
		return 12
	}
	width := 12 / columns
	if width < 1 {
		width = 1
	}
	return width
}

func truncateCell(value string) string {
	runes := []rune(value)
	if len(runes) <= maxCellRunes {
		return value
	}
	return string(runes[:maxCellRunes-1]) + "…"
}
