package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nova-inventario/internal/application/audit"
	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/application/usecase"
	"github.com/jhoicas/nova-inventario/internal/domain"
	"github.com/jhoicas/nova-inventario/internal/domain/access"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
)

var ana = entity.Actor{UserID: "u-ana", Username: "ana"}

func recorderOK() (*audit.Recorder, *AuditRepoMock) {
	repo := new(AuditRepoMock)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	return audit.NewRecorder(repo, nil), repo
}

func TestPermissionService_LeeEstadoVigenteEnCadaLlamada(t *testing.T) {
	users, roles := new(UserRepoMock), new(RoleRepoMock)
	users.On("GetByID", mock.Anything, "u1").Return(&entity.User{ID: "u1", Username: "ana", RoleID: "r1", Active: true}, nil)
	roles.On("GetByID", mock.Anything, "r1").Return(&entity.Role{ID: "r1", Permissions: "productos_leer", Active: true}, nil).Once()
	roles.On("GetByID", mock.Anything, "r1").Return(&entity.Role{ID: "r1", Permissions: "ventas_leer", Active: true}, nil).Once()

	svc := usecase.NewPermissionService(users, roles)
	actor, ok, err := svc.Authorize(context.Background(), "u1", access.ModuleProducts, access.ActionRead)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entity.Actor{UserID: "u1", Username: "ana"}, actor)

	ok, err = svc.HasPermission(context.Background(), "u1", access.ModuleProducts, access.ActionRead)
	require.NoError(t, err)
	assert.False(t, ok, "el permiso revocado debe verse en la siguiente petición")
	roles.AssertExpectations(t)
}

func TestPermissionService_UsuarioInexistente(t *testing.T) {
	users, roles := new(UserRepoMock), new(RoleRepoMock)
	users.On("GetByID", mock.Anything, "x").Return(nil, nil)

	actor, ok, err := usecase.NewPermissionService(users, roles).Authorize(context.Background(), "x", access.ModuleSales, access.ActionCreate)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, actor.Known())
}

func TestPermissionService_Dashboard(t *testing.T) {
	users, roles := new(UserRepoMock), new(RoleRepoMock)
	users.On("GetByID", mock.Anything, "u1").Return(&entity.User{ID: "u1", Username: "ana", RoleID: "r1", Active: true}, nil)
	roles.On("GetByID", mock.Anything, "r1").Return(&entity.Role{ID: "r1", Name: "Bodega", Permissions: "kardex_leer, almacenes_leer, kardex_crear", Active: true}, nil)

	out, err := usecase.NewPermissionService(users, roles).Dashboard(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Bodega", out.Role)
	assert.Equal(t, []string{"almacenes", "kardex"}, out.Modules)
}

func TestRoleUseCase_CreateValidaPermisos(t *testing.T) {
	roles := new(RoleRepoMock)
	rec, _ := recorderOK()
	uc := usecase.NewRoleUseCase(roles, rec)

	_, err := uc.Create(context.Background(), ana, dto.RoleRequest{Name: "Cajero", Permissions: []string{"gestionar"}})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "permissions")
	roles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	roles.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.Role) bool {
		return r.Permissions == "productos_leer, ventas_crear" && r.Active
	})).Return(nil).Once()
	out, err := uc.Create(context.Background(), ana, dto.RoleRequest{
		Name:        " Cajero ",
		Permissions: []string{"Ventas_Crear", "productos_leer", " ventas_crear "},
	})
	require.NoError(t, err)
	assert.Equal(t, "Cajero", out.Name)
	assert.Equal(t, []string{"productos_leer", "ventas_crear"}, out.Permissions)
	roles.AssertExpectations(t)
}

func TestRoleUseCase_RegistraAuditoria(t *testing.T) {
	roles := new(RoleRepoMock)
	auditRepo := new(AuditRepoMock)
	auditRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.AuditLog) bool {
		return e.Detail == `Rol "Vendedor" eliminado por ana` && e.UserID == ana.UserID
	})).Return(nil).Once()
	roles.On("GetByID", mock.Anything, "r1").Return(&entity.Role{ID: "r1", Name: "Vendedor", Active: true}, nil)
	roles.On("SoftDelete", mock.Anything, "r1").Return(nil)

	err := usecase.NewRoleUseCase(roles, audit.NewRecorder(auditRepo, nil)).Delete(context.Background(), ana, "r1")
	require.NoError(t, err)
	auditRepo.AssertExpectations(t)
}

func TestRoleUseCase_NoEncontrado(t *testing.T) {
	roles := new(RoleRepoMock)
	roles.On("GetByID", mock.Anything, "nope").Return(nil, nil)

	_, err := usecase.NewRoleUseCase(roles, nil).GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoleUseCase_Matrix(t *testing.T) {
	roles := new(RoleRepoMock)
	roles.On("List", mock.Anything).Return([]*entity.Role{
		{ID: "r1", Name: "Vendedor", Permissions: "ventas_crear, ventas_leer, gestionar", Active: true},
	}, nil)

	out, err := usecase.NewRoleUseCase(roles, nil).Matrix(context.Background())
	require.NoError(t, err)
	assert.Len(t, out.Modules, len(access.Modules))
	assert.Len(t, out.Actions, len(access.Actions))
	require.Len(t, out.Rows, 1)
	assert.True(t, out.Rows[0].Grants["ventas_crear"])
	assert.False(t, out.Rows[0].Grants["ventas_eliminar"])
	assert.Len(t, out.Rows[0].Grants, len(access.Modules)*len(access.Actions))
}

func TestUserUseCase_BanderasDesdeRol(t *testing.T) {
	users, roles := new(UserRepoMock), new(RoleRepoMock)
	rec, _ := recorderOK()
	roles.On("GetByID", mock.Anything, "admin").Return(&entity.Role{ID: "admin", Name: "Administrador", Active: true}, nil)
	roles.On("GetByID", mock.Anything, "vend").Return(&entity.Role{ID: "vend", Name: "Vendedor", Active: true}, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)
	uc := usecase.NewUserUseCase(users, roles, rec)

	created, err := uc.Create(context.Background(), ana, dto.CreateUserRequest{Username: "luis", Password: "secreto123", RoleID: "admin"})
	require.NoError(t, err)
	assert.True(t, created.IsSuperuser)
	assert.True(t, created.IsStaff)
	assert.True(t, created.Active)

	stored := &entity.User{ID: created.ID, Username: "luis", RoleID: "admin", Active: true, IsSuperuser: true, IsStaff: true}
	users.On("GetByID", mock.Anything, created.ID).Return(stored, nil)

	sinRol := ""
	out, err := uc.Update(context.Background(), ana, created.ID, dto.UpdateUserRequest{RoleID: &sinRol})
	require.NoError(t, err)
	assert.True(t, out.IsSuperuser, "sin rol las banderas se conservan")

	vend := "vend"
	out, err = uc.Update(context.Background(), ana, created.ID, dto.UpdateUserRequest{RoleID: &vend})
	require.NoError(t, err)
	assert.False(t, out.IsSuperuser)
	assert.False(t, out.IsStaff)
}

func TestUserUseCase_EliminarseASiMismoConservaAuditoria(t *testing.T) {
	users, roles := new(UserRepoMock), new(RoleRepoMock)
	auditRepo := new(AuditRepoMock)
	users.On("GetByID", mock.Anything, ana.UserID).Return(&entity.User{ID: ana.UserID, Username: "ana", Active: true}, nil)
	users.On("Delete", mock.Anything, ana.UserID).Return(nil)
	auditRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.AuditLog) bool {
		return e.UserID == "" && e.Detail == `Usuario "ana" eliminado por ana`
	})).Return(nil).Once()

	err := usecase.NewUserUseCase(users, roles, audit.NewRecorder(auditRepo, nil)).Delete(context.Background(), ana, ana.UserID)
	require.NoError(t, err)
	auditRepo.AssertExpectations(t)
}

func TestUserUseCase_RolInexistente(t *testing.T) {
	users, roles := new(UserRepoMock), new(RoleRepoMock)
	roles.On("GetByID", mock.Anything, "x").Return(nil, nil)

	_, err := usecase.NewUserUseCase(users, roles, nil).Create(context.Background(), ana, dto.CreateUserRequest{Username: "luis", Password: "secreto123", RoleID: "x"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "role_id")
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductUseCase_CreateDefaults(t *testing.T) {
	products := new(ProductRepoMock)
	rec, _ := recorderOK()
	products.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Currency == entity.CurrencyCOP && p.Unit == entity.UnitUnidad && p.Quantity == 7 && p.Active
	})).Return(nil).Once()

	out, err := usecase.NewProductUseCase(products, rec).Create(context.Background(), ana, dto.ProductRequest{
		Name:      "Café",
		SKU:       "CAF-1",
		UnitPrice: decimal.NewFromInt(12000),
		Quantity:  7,
	})
	require.NoError(t, err)
	assert.Equal(t, "COP", out.Currency)
	products.AssertExpectations(t)
}

func TestProductUseCase_CreateInvalido(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUseCase(products, nil)

	_, err := uc.Create(context.Background(), ana, dto.ProductRequest{Name: "x", SKU: "x", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), ana, dto.ProductRequest{Name: "", SKU: "", Currency: "GBP", UnitPrice: decimal.NewFromInt(-1)})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 4)
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
