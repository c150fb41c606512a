package dto

import "time"

// RoleRequest entrada para crear o reemplazar un rol.
// Permissions acepta la lista de tokens "modulo_accion".
type RoleRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
	Active      *bool    `json:"active"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Permissions []string  `json:"permissions"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoleMatrixRow fila de la matriz de permisos.
type RoleMatrixRow struct {
	RoleID   string          `json:"role_id"`
	RoleName string          `json:"role_name"`
	Grants   map[string]bool `json:"grants"`
}

// RoleMatrixResponse matriz roles × (módulo, acción).
type RoleMatrixResponse struct {
	Modules []string        `json:"modules"`
	Actions []string        `json:"actions"`
	Rows    []RoleMatrixRow `json:"rows"`
}

// DashboardResponse módulos visibles para el usuario.
type DashboardResponse struct {
	Username string   `json:"username"`
	Role     string   `json:"role,omitempty"`
	Modules  []string `json:"modules"`
}
