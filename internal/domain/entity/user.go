package entity

import (
	"strings"
	"time"
)

// User representa un usuario del sistema.
// IsSuperuser e IsStaff se recalculan en cada guardado a partir del rol (ver access.AdminFlags).
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt
	FirstName    string
	LastName     string
	RoleID       string // vacío si no tiene rol
	Active       bool   // estado
	IsSuperuser  bool
	IsStaff      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombres + apellidos, o el username si no hay nombres.
func (u *User) FullName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Username
	}
	return full
}
