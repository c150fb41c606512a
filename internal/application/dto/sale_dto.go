package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest par (producto, cantidad).
type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"`
}

// CreateSaleRequest carrito de venta. Se acepta Items o, por compatibilidad con
// formularios, los arreglos paralelos ProductIDs/Quantities (deben tener igual longitud).
type CreateSaleRequest struct {
	Items      []SaleItemRequest `json:"items" validate:"dive"`
	ProductIDs []string          `json:"product_ids" validate:"dive,uuid"`
	Quantities []int             `json:"quantities"`
}

// SaleLineResponse línea de venta.
type SaleLineResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta con sus líneas; montos en COP.
type SaleResponse struct {
	ID       string             `json:"id"`
	UserID   string             `json:"user_id,omitempty"`
	Date     time.Time          `json:"date"`
	Total    decimal.Decimal    `json:"total"`
	Currency string             `json:"currency"`
	Lines    []SaleLineResponse `json:"lines,omitempty"`
}
