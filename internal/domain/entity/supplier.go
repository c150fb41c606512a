package entity

// Supplier proveedor de productos.
type Supplier struct {
	ID      string
	Name    string // único
	Contact string
	Phone   string
	Email   string
	Address string
	NIT     string // único si no está vacío
	Active  bool
}
