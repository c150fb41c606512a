package dto

import "github.com/shopspring/decimal"

// CategoryRequest entrada para crear o actualizar una categoría.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
	Icon        string `json:"icon" validate:"max=50"`
	Active      *bool  `json:"active"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Active      bool   `json:"active"`
}

// SupplierRequest entrada para crear o actualizar un proveedor.
type SupplierRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Contact string `json:"contact" validate:"max=100"`
	Phone   string `json:"phone" validate:"max=20"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
	NIT     string `json:"nit" validate:"max=20"`
	Active  *bool  `json:"active"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	NIT     string `json:"nit"`
	Active  bool   `json:"active"`
}

// WarehouseRequest entrada para crear o actualizar un almacén.
type WarehouseRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=100"`
	Number        string          `json:"number" validate:"max=20"`
	Location      string          `json:"location"`
	Capacity      decimal.Decimal `json:"capacity"`
	ResponsibleID string          `json:"responsible_id" validate:"omitempty,uuid"`
	Active        *bool           `json:"active"`
}

// WarehouseResponse salida de un almacén.
type WarehouseResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Number        string          `json:"number"`
	Label         string          `json:"label"`
	Location      string          `json:"location"`
	Capacity      decimal.Decimal `json:"capacity"`
	ResponsibleID string          `json:"responsible_id,omitempty"`
	Active        bool            `json:"active"`
}
