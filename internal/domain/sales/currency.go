// Package sales reglas puras del motor de ventas.
package sales

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nova-inventario/internal/domain"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
)

// ReferenceCurrency moneda en que se expresan totales y precios de venta.
const ReferenceCurrency = entity.CurrencyCOP

// ratesToCOP tabla fija de conversión a pesos colombianos.
var ratesToCOP = map[string]decimal.Decimal{
	entity.CurrencyCOP: decimal.NewFromInt(1),
	entity.CurrencyUSD: decimal.NewFromInt(4000),
	entity.CurrencyEUR: decimal.NewFromInt(4500),
}

// RateToCOP tasa para la moneda dada.
func RateToCOP(currency string) (decimal.Decimal, error) {
	r, ok := ratesToCOP[currency]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, currency)
	}
	return r, nil
}

// ToCOP convierte un precio unitario a COP.
func ToCOP(amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	r, err := RateToCOP(currency)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(r), nil
}

// IsSupportedCurrency informa si la moneda está en la tabla.
func IsSupportedCurrency(currency string) bool {
	_, ok := ratesToCOP[currency]
	return ok
}
