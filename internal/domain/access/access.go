package access

import (
	"strings"

	"github.com/jhoicas/nova-inventario/internal/domain/entity"
)

// Nombres de rol que otorgan superusuario y staff.
var adminRoleNames = []string{"administrador", "admin"}

// HasPermission decide si el actor puede ejecutar action sobre module.
// user nil representa un actor no autenticado. role es el rol actual del
// usuario (nil si no tiene). Es un predicado puro: el llamador debe pasar el
// estado vigente, no una copia cacheada de otra petición.
func HasPermission(user *entity.User, role *entity.Role, module Module, action Action) bool {
	return HasToken(user, role, string(module), string(action))
}

// HasToken igual que HasPermission pero con módulo y acción sin tipar; permite
// consultar tokens heredados que no forman parte del catálogo.
func HasToken(user *entity.User, role *entity.Role, module, action string) bool {
	if user == nil || !user.Active {
		return false
	}
	if user.IsSuperuser {
		return true
	}
	if role == nil || !role.Active {
		return false
	}
	return ParsePermissions(role.Permissions).Has(module, action)
}

// Flags banderas derivadas del rol.
type Flags struct {
	Superuser bool
	Staff     bool
}

// IsAdminRoleName informa si el nombre de rol corresponde a un administrador.
func IsAdminRoleName(name string) bool {
	n := normalize(name)
	for _, a := range adminRoleNames {
		if n == a {
			return true
		}
	}
	return false
}

// AdminFlags calcula superusuario/staff para un usuario con el rol dado.
// Sin rol se conservan las banderas actuales; con rol administrador ambas son
// true; con cualquier otro rol ambas son false.
func AdminFlags(role *entity.Role, current Flags) Flags {
	if role == nil || strings.TrimSpace(role.Name) == "" {
		return current
	}
	if IsAdminRoleName(role.Name) {
		return Flags{Superuser: true, Staff: true}
	}
	return Flags{}
}

// ApplyAdminFlags recalcula y asigna las banderas sobre el usuario.
func ApplyAdminFlags(user *entity.User, role *entity.Role) {
	f := AdminFlags(role, Flags{Superuser: user.IsSuperuser, Staff: user.IsStaff})
	user.IsSuperuser = f.Superuser
	user.IsStaff = f.Staff
}

// VisibleModules módulos con permiso de lectura, en orden de Modules.
func VisibleModules(user *entity.User, role *entity.Role) []Module {
	out := make([]Module, 0, len(Modules))
	for _, m := range Modules {
		if HasPermission(user, role, m, ActionRead) {
			out = append(out, m)
		}
	}
	return out
}

// Matrix para un rol, token -> concedido, sobre todo el catálogo Modules × Actions.
func Matrix(role *entity.Role) map[string]bool {
	set := PermissionSet{}
	if role != nil {
		set = ParsePermissions(role.Permissions)
	}
	out := make(map[string]bool, len(Modules)*len(Actions))
	for _, m := range Modules {
		for _, a := range Actions {
			out[Token(string(m), string(a))] = set.Has(string(m), string(a))
		}
	}
	return out
}
