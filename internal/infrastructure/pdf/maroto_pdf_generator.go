// Package pdf genera los documentos PDF de la aplicación con Maroto v2:
// reportes tabulares (productos, ventas, kardex) y la factura de una venta.
//
// Layout de la factura (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nova Inventario      │  N° Venta + Fecha           │
//	│  VENDEDOR                                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | SKU | P.Unit | Subtotal            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL (COP)                                                 │
//	│  QR con el ID de la venta                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nova-inventario/internal/application/report"
	"github.com/jhoicas/nova-inventario/internal/application/sales"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
)

const appName = "Nova Inventario"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

var (
	_ report.TablePDFGenerator  = (*MarotoPDFGenerator)(nil)
	_ sales.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)
)

// MarotoPDFGenerator implementa report.TablePDFGenerator y sales.InvoicePDFGenerator.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// ── Reportes ──────────────────────────────────────────────────────────────────

// GenerateTablePDF genera un reporte tabular en A4 horizontal. La cabecera de
// columnas se repite en cada página.
func (g *MarotoPDFGenerator) GenerateTablePDF(_ context.Context, doc report.TableDocument) ([]byte, error) {
	if len(doc.Widths) != len(doc.Columns) {
		return nil, fmt.Errorf("pdf: %d columnas con %d anchos", len(doc.Columns), len(doc.Widths))
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(doc.Title, true).
		WithAuthor(appName, true).
		Build()

	m := maroto.New(cfg)
	if err := m.RegisterHeader(tableHeaderRow(doc.Columns, doc.Widths)); err != nil {
		return nil, fmt.Errorf("pdf: registrar cabecera: %w", err)
	}

	m.AddRows(titleRow(doc.Title))
	for _, f := range doc.Filters {
		m.AddRows(text.NewRow(5, f, props.Text{Size: 8, Color: colorGray}))
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.4}))

	if len(doc.Rows) == 0 {
		m.AddRows(text.NewRow(8, "Sin registros para los filtros aplicados.", props.Text{
			Size: 9, Align: align.Center, Top: 2, Color: colorGray,
		}))
	}
	for i, cells := range doc.Rows {
		m.AddRows(tableDataRow(cells, doc.Widths, i%2 == 1))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, f := range doc.Footer {
		m.AddRows(text.NewRow(5, f, props.Text{Style: fontstyle.Bold, Size: 8}))
	}
	return generate(m)
}

func titleRow(title string) core.Row {
	return row.New(12).Add(
		col.New(8).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New(appName, props.Text{
			Size: 9, Align: align.Right, Color: colorGray, Top: 4,
		})),
	)
}

func tableHeaderRow(columns []string, widths []int) core.Row {
	cols := make([]core.Col, 0, len(columns))
	for i, c := range columns {
		cols = append(cols, col.New(widths[i]).Add(text.New(c, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableDataRow(cells []string, widths []int, striped bool) core.Row {
	cols := make([]core.Col, 0, len(widths))
	for i, w := range widths {
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		cols = append(cols, col.New(w).Add(text.New(value, props.Text{Size: 8, Top: 1, Left: 1, Right: 1})))
	}
	r := row.New(6).Add(cols...)
	if striped {
		r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

// ── Factura de venta ──────────────────────────────────────────────────────────

// GenerateSaleInvoicePDF genera la factura de una venta. Los montos están en COP.
func (g *MarotoPDFGenerator) GenerateSaleInvoicePDF(
	_ context.Context,
	sale *entity.Sale,
	seller string,
	lines []sales.InvoiceLine,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura de venta "+sale.ID, true).
		WithAuthor(appName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(invoiceHeaderRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New("VENDEDOR", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(seller, props.Text{Size: 9, Top: 5}),
	)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(invoiceTableHeaderRow())
	for _, l := range lines {
		m.AddRows(invoiceLineRow(l))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL (COP):", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+formatMoney(sale.Total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	))

	m.AddRows(line.NewRow(4))
	m.AddRows(row.New(40).Add(
		col.New(3).Add(code.NewQr(sale.ID, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Identificador de la venta:", props.Text{Size: 8, Top: 4, Left: 3, Color: colorGray}),
			text.New(sale.ID, props.Text{Style: fontstyle.Bold, Size: 9, Top: 10, Left: 3}),
			text.New("Precios convertidos a COP con la tasa vigente al momento de la venta.", props.Text{
				Size: 7, Top: 20, Left: 3, Color: colorGray,
			}),
		),
	))
	return generate(m)
}

func invoiceHeaderRow(sale *entity.Sale) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(appName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Factura de venta", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(sale.ID), props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7}),
			text.New("Fecha: "+sale.Date.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func invoiceTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 4, align.Left),
		h("SKU", 2, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func invoiceLineRow(l sales.InvoiceLine) core.Row {
	return row.New(7).Add(
		col.New(1).Add(text.New(strconv.Itoa(l.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(4).Add(text.New(l.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(l.ProductSKU, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New("$"+formatMoney(l.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(3).Add(text.New("$"+formatMoney(l.Subtotal()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// formatMoney formatea con puntos de miles y coma decimal.
// Ej: 25000 → "25.000,00", 1234567.5 → "1.234.567,50"
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + frac
	if d.IsNegative() {
		out = "-" + out
	}
	return out
}

func shortID(id string) string {
	if len(id) > 8 {
		return strings.ToUpper(id[:8])
	}
	return strings.ToUpper(id)
}
