package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nova-inventario/internal/application/report"
	"github.com/jhoicas/nova-inventario/internal/application/sales"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0,00", formatMoney(decimal.Zero))
	assert.Equal(t, "999,50", formatMoney(decimal.RequireFromString("999.5")))
	assert.Equal(t, "25.000,00", formatMoney(decimal.NewFromInt(25000)))
	assert.Equal(t, "1.234.567,89", formatMoney(decimal.RequireFromString("1234567.89")))
	assert.Equal(t, "-4.000,00", formatMoney(decimal.NewFromInt(-4000)))
}

func TestGenerateTablePDF(t *testing.T) {
	g := NewMarotoPDFGenerator()
	out, err := g.GenerateTablePDF(context.Background(), report.TableDocument{
		Title:   "Reporte de productos",
		Filters: []string{"Nombre: café"},
		Columns: []string{"Nombre", "SKU"},
		Widths:  []int{8, 4},
		Rows:    [][]string{{"Café", "C1"}, {"Té", "T1"}},
		Footer:  []string{"Total productos: 2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))

	empty, err := g.GenerateTablePDF(context.Background(), report.TableDocument{
		Title: "Vacío", Columns: []string{"A"}, Widths: []int{12},
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(empty[:4]))
}

func TestGenerateTablePDF_AnchosInconsistentes(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateTablePDF(context.Background(), report.TableDocument{
		Columns: []string{"A", "B"}, Widths: []int{12},
	})
	assert.Error(t, err)
}

func TestGenerateSaleInvoicePDF(t *testing.T) {
	sale := &entity.Sale{
		ID:    "6f1c2d3e-0000-4000-8000-000000000001",
		Date:  time.Date(2024, 5, 2, 10, 30, 0, 0, time.UTC),
		Total: decimal.NewFromInt(80000),
	}
	lines := []sales.InvoiceLine{{
		SaleLine:    entity.SaleLine{ProductID: "p1", Quantity: 2, UnitPrice: decimal.NewFromInt(40000)},
		ProductName: "Café",
		ProductSKU:  "C1",
	}}
	out, err := NewMarotoPDFGenerator().GenerateSaleInvoicePDF(context.Background(), sale, "ana", lines)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
