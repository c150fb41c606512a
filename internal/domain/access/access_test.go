package access_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nova-inventario/internal/domain"
	"github.com/jhoicas/nova-inventario/internal/domain/access"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
)

func activeUser() *entity.User {
	return &entity.User{ID: "u1", Username: "ana", Active: true}
}

func roleWith(perms string) *entity.Role {
	return &entity.Role{ID: "r1", Name: "Vendedor", Permissions: perms, Active: true}
}

func TestHasPermission_Membresia(t *testing.T) {
	role := roleWith(" Productos_Leer ,ventas_crear,  gestionar ")
	u := activeUser()

	cases := []struct {
		module access.Module
		action access.Action
		want   bool
	}{
		{access.ModuleProducts, access.ActionRead, true},
		{access.ModuleSales, access.ActionCreate, true},
		{access.ModuleProducts, access.ActionCreate, false},
		{access.ModuleUsers, access.ActionRead, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, access.HasPermission(u, role, c.module, c.action), "%s_%s", c.module, c.action)
	}
}

func TestHasPermission_TokensSinTipoNormalizados(t *testing.T) {
	role := roleWith("gestionar_usuarios")
	assert.True(t, access.HasToken(activeUser(), role, " GESTIONAR ", "Usuarios "))
	// el token mal formado nunca coincide con nada
	role = roleWith("gestionar")
	assert.False(t, access.HasToken(activeUser(), role, "gestionar", ""))
}

func TestHasPermission_Precondiciones(t *testing.T) {
	role := roleWith("productos_leer")

	assert.False(t, access.HasPermission(nil, role, access.ModuleProducts, access.ActionRead), "no autenticado")

	inactive := activeUser()
	inactive.Active = false
	inactive.IsSuperuser = true
	assert.False(t, access.HasPermission(inactive, role, access.ModuleProducts, access.ActionRead), "usuario inactivo, aunque sea superusuario")

	super := activeUser()
	super.IsSuperuser = true
	assert.True(t, access.HasPermission(super, nil, access.ModuleAudit, access.ActionDelete), "superusuario sin rol")

	assert.False(t, access.HasPermission(activeUser(), nil, access.ModuleProducts, access.ActionRead), "sin rol")

	off := roleWith("productos_leer")
	off.Active = false
	assert.False(t, access.HasPermission(activeUser(), off, access.ModuleProducts, access.ActionRead), "rol inactivo")
}

func TestParsePermissions_Idempotente(t *testing.T) {
	set := access.ParsePermissions("A, a, A")
	assert.Len(t, set, 1)
	assert.Equal(t, []string{"a"}, set.Tokens())

	again := access.ParsePermissions(set.Tokens()[0])
	assert.Equal(t, set, again)

	assert.Empty(t, access.ParsePermissions(""))
	assert.Empty(t, access.ParsePermissions(" , ,"))
}

func TestParsePermission(t *testing.T) {
	p, err := access.ParsePermission("  Almacenes_CREAR ")
	require.NoError(t, err)
	assert.Equal(t, access.ModuleWarehouses, p.Module)
	assert.Equal(t, access.ActionCreate, p.Action)
	assert.Equal(t, "almacenes_crear", p.String())

	for _, bad := range []string{"gestionar", "_leer", "productos_", "bodegas_leer", "productos_borrar"} {
		_, err := access.ParsePermission(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidPermission, bad)
	}
}

func TestValidatePermissions(t *testing.T) {
	canon, err := access.ValidatePermissions([]string{"ventas_crear", "PRODUCTOS_LEER", "productos_leer", " "})
	require.NoError(t, err)
	assert.Equal(t, "productos_leer, ventas_crear", canon)

	_, err = access.ValidatePermissions([]string{"productos_leer", "gestionar_usuarios"})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "permissions")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdminFlags(t *testing.T) {
	cur := access.Flags{Superuser: true, Staff: true}

	assert.Equal(t, cur, access.AdminFlags(nil, cur), "sin rol conserva banderas")
	assert.Equal(t, access.Flags{Superuser: true, Staff: true}, access.AdminFlags(&entity.Role{Name: " Administrador "}, access.Flags{}))
	assert.Equal(t, access.Flags{Superuser: true, Staff: true}, access.AdminFlags(&entity.Role{Name: "ADMIN"}, access.Flags{}))
	assert.Equal(t, access.Flags{}, access.AdminFlags(&entity.Role{Name: "Bodeguero"}, cur), "otro rol resetea banderas")

	u := activeUser()
	u.IsSuperuser = true
	access.ApplyAdminFlags(u, &entity.Role{Name: "vendedor"})
	assert.False(t, u.IsSuperuser)
	assert.False(t, u.IsStaff)
}

func TestVisibleModulesYMatrix(t *testing.T) {
	role := roleWith("productos_leer, kardex_leer, roles_crear")
	mods := access.VisibleModules(activeUser(), role)
	assert.Equal(t, []access.Module{access.ModuleProducts, access.ModuleKardex}, mods)

	m := access.Matrix(role)
	assert.Len(t, m, len(access.Modules)*len(access.Actions))
	assert.True(t, m["roles_crear"])
	assert.False(t, m["roles_leer"])
}
