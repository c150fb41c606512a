package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o actualizar un producto.
type ProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Description string          `json:"description"`
	SKU         string          `json:"sku" validate:"required,min=1,max=100"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Currency    string          `json:"currency" validate:"omitempty,oneof=COP USD EUR"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	Unit        string          `json:"unit" validate:"omitempty,oneof=kg ml litro unidad"`
	CategoryID  string          `json:"category_id" validate:"omitempty,uuid"`
	SupplierID  string          `json:"supplier_id" validate:"omitempty,uuid"`
	WarehouseID string          `json:"warehouse_id" validate:"omitempty,uuid"`
	Active      *bool           `json:"active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	SKU         string          `json:"sku"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Currency    string          `json:"currency"`
	Quantity    int             `json:"quantity"`
	Unit        string          `json:"unit"`
	CategoryID  string          `json:"category_id,omitempty"`
	SupplierID  string          `json:"supplier_id,omitempty"`
	WarehouseID string          `json:"warehouse_id,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
