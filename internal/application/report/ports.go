package report

import "context"

// TableDocument documento tabular genérico: título, filtros aplicados y filas.
type TableDocument struct {
	Title   string
	Filters []string // "Nombre: café", "Desde: 2024-01-01"
	Columns []string
	Widths  []int // ancho de cada columna en la grilla de 12; len == len(Columns)
	Rows    [][]string
	Footer  []string
}

// TablePDFGenerator convierte un TableDocument en PDF.
type TablePDFGenerator interface {
	GenerateTablePDF(ctx context.Context, doc TableDocument) ([]byte, error)
}
