package entity

import "time"

// Tipos de movimiento del kardex.
const (
	MovementIn  = "entrada"
	MovementOut = "salida"
)

// ReasonSale motivo registrado para las salidas generadas por ventas.
const ReasonSale = "venta"

// StockMovement registro del kardex. El stock resultante no se guarda: ver CurrentStock.
type StockMovement struct {
	ID         string
	ProductID  string
	Type       string // entrada | salida
	Quantity   int
	PriorStock int
	Date       time.Time
	Reason     string
	UserID     string // vacío si no hay usuario
}

// CurrentStock stock después del movimiento, derivado de PriorStock.
func (m *StockMovement) CurrentStock() int {
	if m.Type == MovementIn {
		return m.PriorStock + m.Quantity
	}
	return m.PriorStock - m.Quantity
}
