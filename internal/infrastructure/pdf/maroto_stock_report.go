// Package pdf implementa la exportación del reporte de stock disponible con
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte │ Fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Artículo | Producto | Talla | Color | Cantidad       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: unidades disponibles                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ilogush/backoffice-api/internal/application/dto"
	"github.com/ilogush/backoffice-api/internal/application/reports"
)

var _ reports.StockPDFGenerator = (*MarotoStockReport)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoStockReport implementa reports.StockPDFGenerator usando Maroto v2.
type MarotoStockReport struct{}

// NewMarotoStockReport construye el generador.
func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// GenerateStockPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockPDF(
	_ context.Context,
	lines []dto.StockLineResponse,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock disponible", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())

	var total int64
	for _, l := range lines {
		m.AddRows(detailRow(l))
		total += l.Qty
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("STOCK DISPONIBLE", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	right := header
	right.Align = align.Right
	return row.New(7).Add(
		col.New(2).Add(text.New("Artículo", header)),
		col.New(5).Add(text.New("Producto", header)),
		col.New(1).Add(text.New("Talla", header)),
		col.New(2).Add(text.New("Color", header)),
		col.New(2).Add(text.New("Cantidad", right)),
	)
}

func detailRow(l dto.StockLineResponse) core.Row {
	cell := props.Text{Size: 8}
	right := cell
	right.Align = align.Right
	return row.New(5).Add(
		col.New(2).Add(text.New(l.Article, cell)),
		col.New(5).Add(text.New(l.ProductName, cell)),
		col.New(1).Add(text.New(l.Size, cell)),
		col.New(2).Add(text.New(l.ColorName, cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", l.Qty), right)),
	)
}

func totalRow(total int64) core.Row {
	return row.New(8).Add(
		col.New(10).Add(text.New("TOTAL UNIDADES", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
		})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Color: colorPrimary,
		})),
	)
}
