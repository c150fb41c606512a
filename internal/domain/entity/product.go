package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Monedas soportadas para el precio unitario.
const (
	CurrencyCOP = "COP"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// Unidades de medida.
const (
	UnitKg     = "kg"
	UnitMl     = "ml"
	UnitLitro  = "litro"
	UnitUnidad = "unidad"
)

// Product producto del catálogo. Quantity es el stock disponible (nunca negativo).
// CategoryID, SupplierID y WarehouseID vacíos equivalen a NULL.
type Product struct {
	ID          string
	Name        string
	Description string
	SKU         string // único
	UnitPrice   decimal.Decimal
	Currency    string // COP, USD, EUR
	Quantity    int
	Unit        string
	CategoryID  string
	SupplierID  string
	WarehouseID string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Label "nombre (sku)".
func (p *Product) Label() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.SKU)
}

// Decrement descuenta qty del stock solo si hay existencias suficientes.
// Devuelve false sin modificar el producto cuando no alcanzan; nunca deja stock negativo.
func (p *Product) Decrement(qty int) bool {
	if qty <= 0 || p.Quantity < qty {
		return false
	}
	p.Quantity -= qty
	return true
}
