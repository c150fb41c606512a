package repository

import "time"

// ProductFilter filtros compartidos por el listado, el reporte y la exportación de productos.
type ProductFilter struct {
	Name       string // subcadena, sin distinguir mayúsculas
	CategoryID string
	SupplierID string
	Active     *bool
	From       *time.Time // fecha de creación >= From
	To         *time.Time // fecha de creación <= To
}

// SaleFilter filtros de ventas.
type SaleFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
}

// MovementFilter filtros del kardex.
type MovementFilter struct {
	ProductID string
	From      *time.Time
	To        *time.Time
}
