// Package access contiene el modelo de permisos granulares "modulo_accion"
// y el predicado de control de acceso.
//
// Un rol guarda sus permisos como texto libre separado por comas. La lectura es
// tolerante: los tokens se normalizan (trim + minúsculas) y los que no tienen la
// forma modulo_accion simplemente nunca coinciden. La escritura, en cambio, pasa
// por ValidatePermissions, que solo acepta pares (Module, Action) conocidos.
package access

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/nova-inventario/internal/domain"
)

// Module área funcional: primer componente del token.
type Module string

// Action operación CRUD: segundo componente del token.
type Action string

const (
	ModuleProducts   Module = "productos"
	ModuleUsers      Module = "usuarios"
	ModuleSuppliers  Module = "proveedores"
	ModuleWarehouses Module = "almacenes"
	ModuleCategories Module = "categorias"
	ModuleRoles      Module = "roles"
	ModuleSales      Module = "ventas"
	ModuleKardex     Module = "kardex"
	ModuleReports    Module = "reportes"
	ModuleAudit      Module = "auditoria"
)

const (
	ActionCreate Action = "crear"
	ActionRead   Action = "leer"
	ActionUpdate Action = "actualizar"
	ActionDelete Action = "eliminar"
)

// Modules en el orden en que se muestran en el dashboard y la matriz.
var Modules = []Module{
	ModuleProducts, ModuleUsers, ModuleSuppliers, ModuleWarehouses, ModuleCategories,
	ModuleRoles, ModuleSales, ModuleKardex, ModuleReports, ModuleAudit,
}

// Actions columnas CRUD de la matriz de permisos.
var Actions = []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete}

// Permission par tipado (Module, Action).
type Permission struct {
	Module Module
	Action Action
}

// String forma de token "modulo_accion".
func (p Permission) String() string {
	return Token(string(p.Module), string(p.Action))
}

// Token construye el token normalizado para un módulo y una acción arbitrarios.
func Token(module, action string) string {
	return normalize(module) + "_" + normalize(action)
}

// normalize recorta espacios y pasa a minúsculas. Un Caser no es seguro entre
// goroutines, por eso se crea en cada llamada.
func normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

func isKnownModule(m Module) bool {
	for _, k := range Modules {
		if k == m {
			return true
		}
	}
	return false
}

func isKnownAction(a Action) bool {
	for _, k := range Actions {
		if k == a {
			return true
		}
	}
	return false
}

// ParsePermission interpreta un token como par conocido (Module, Action).
func ParsePermission(token string) (Permission, error) {
	t := normalize(token)
	mod, act, ok := strings.Cut(t, "_")
	if !ok || mod == "" || act == "" {
		return Permission{}, fmt.Errorf("%w: %q no tiene la forma modulo_accion", domain.ErrInvalidPermission, token)
	}
	p := Permission{Module: Module(mod), Action: Action(act)}
	if !isKnownModule(p.Module) {
		return Permission{}, fmt.Errorf("%w: módulo %q desconocido", domain.ErrInvalidPermission, mod)
	}
	if !isKnownAction(p.Action) {
		return Permission{}, fmt.Errorf("%w: acción %q desconocida", domain.ErrInvalidPermission, act)
	}
	return p, nil
}

// PermissionSet conjunto de tokens normalizados. Puede contener tokens mal
// formados provenientes de datos antiguos; nunca coinciden con un chequeo.
type PermissionSet map[string]struct{}

// ParsePermissions divide el texto por comas, normaliza cada token y descarta vacíos.
// Los duplicados colapsan en un solo elemento.
func ParsePermissions(raw string) PermissionSet {
	set := make(PermissionSet)
	for _, part := range strings.Split(raw, ",") {
		t := normalize(part)
		if t == "" {
			continue
		}
		set[t] = struct{}{}
	}
	return set
}

// Has informa si el token "{module}_{action}" pertenece al conjunto.
func (s PermissionSet) Has(module, action string) bool {
	_, ok := s[Token(module, action)]
	return ok
}

// Tokens lista ordenada de tokens (estable para respuestas y tests).
func (s PermissionSet) Tokens() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// ValidatePermissions valida cada token en el momento de escritura y devuelve
// la forma canónica (ordenada, sin duplicados, separada por ", ").
func ValidatePermissions(tokens []string) (string, error) {
	seen := make(map[string]struct{}, len(tokens))
	canon := make([]string, 0, len(tokens))
	for _, raw := range tokens {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		p, err := ParsePermission(raw)
		if err != nil {
			return "", domain.NewValidationError("permissions", err.Error())
		}
		s := p.String()
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		canon = append(canon, s)
	}
	sort.Strings(canon)
	return strings.Join(canon, ", "), nil
}

// SplitPermissions divide un texto libre por comas sin validar (entrada de formularios).
func SplitPermissions(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
