package entity

import "time"

// Role agrupa permisos granulares "modulo_accion" asignables a usuarios.
// Permissions se persiste como texto libre separado por comas; ver access.ParsePermissions.
type Role struct {
	ID          string
	Name        string // único
	Description string
	Permissions string // ej. "productos_leer, ventas_crear"
	Active      bool   // estado
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
