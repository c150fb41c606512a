package entity

// Category categoría de productos.
type Category struct {
	ID          string
	Name        string // único
	Description string
	Icon        string
	Active      bool
}
