package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Warehouse almacén o bodega donde se ubica el inventario.
type Warehouse struct {
	ID            string
	Name          string // único
	Number        string // único si no está vacío
	Location      string
	Capacity      decimal.Decimal
	ResponsibleID string // UserID, vacío si no tiene
	Active        bool
}

// Label nombre con número, como se muestra en listados.
func (w *Warehouse) Label() string {
	num := w.Number
	if num == "" {
		num = "N/A"
	}
	return fmt.Sprintf("%s (%s)", w.Name, num)
}
