package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta registrada por un usuario. Total en COP.
type Sale struct {
	ID     string
	UserID string
	Date   time.Time
	Total  decimal.Decimal
	Lines  []SaleLine
}

// SaleLine detalle de venta. UnitPrice es la foto del precio en COP al momento de la venta.
type SaleLine struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal UnitPrice * Quantity.
func (l SaleLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
