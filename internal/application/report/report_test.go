package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nova-inventario/internal/application/report"
	"github.com/jhoicas/nova-inventario/internal/domain"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
)

var created = time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)

func query(values map[string]string) func(string) string {
	return func(k string) string { return values[k] }
}

func TestParseFilter(t *testing.T) {
	f, err := report.ParseFilter(query(map[string]string{
		"nombre": " café ",
		"estado": "Inactivo",
		"desde":  "2024-03-01",
		"hasta":  "2024-03-31",
	}))
	require.NoError(t, err)
	assert.Equal(t, "café", f.Name)

	pf := f.ProductFilter()
	require.NotNil(t, pf.Active)
	assert.False(t, *pf.Active)
	assert.Equal(t, 1, pf.From.Day())
	assert.Equal(t, 31, pf.To.Day())
	assert.Equal(t, 23, pf.To.Hour())
	assert.Contains(t, f.Describe(), "Desde: 2024-03-01")
}

func TestParseFilter_Invalido(t *testing.T) {
	_, err := report.ParseFilter(query(map[string]string{
		"estado": "todos",
		"desde":  "01/03/2024",
	}))
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "estado")
	assert.Contains(t, verr.Fields, "desde")

	_, err = report.ParseFilter(query(map[string]string{"desde": "2024-03-10", "hasta": "2024-03-01"}))
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "hasta")
}

func TestParseFilter_IdentificadoresInvalidos(t *testing.T) {
	_, err := report.ParseFilter(query(map[string]string{
		"categoria": "abc",
		"proveedor": "1",
		"producto":  "x-y",
		"usuario":   "' OR 1=1",
	}))
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	for _, param := range []string{"categoria", "proveedor", "producto", "usuario"} {
		assert.Equal(t, "identificador inválido", verr.Fields[param], param)
	}

	f, err := report.ParseFilter(query(map[string]string{"producto": "5f0c6a8e-3d1b-4c2a-9e7f-1a2b3c4d5e6f"}))
	require.NoError(t, err)
	assert.Equal(t, "5f0c6a8e-3d1b-4c2a-9e7f-1a2b3c4d5e6f", f.MovementFilter().ProductID)
}

type productRepo struct {
	repository.ProductRepository
	got  repository.ProductFilter
	list []*entity.Product
}

func (r *productRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	r.got = f
	return r.list, nil
}

type captureGenerator struct{ doc report.TableDocument }

func (g *captureGenerator) GenerateTablePDF(_ context.Context, doc report.TableDocument) ([]byte, error) {
	g.doc = doc
	return []byte("%PDF"), nil
}

func TestExport_MismoFiltroQueElListado(t *testing.T) {
	products := &productRepo{list: []*entity.Product{
		{ID: "1", Name: "Café", SKU: "C1", UnitPrice: decimal.NewFromInt(12000), Currency: "COP", Quantity: 4, Unit: "kg", Active: true},
	}}
	gen := &captureGenerator{}
	uc := report.NewUseCase(report.Repositories{Products: products}, gen)

	f, err := report.ParseFilter(query(map[string]string{"nombre": "caf", "estado": "activo"}))
	require.NoError(t, err)

	listed, err := uc.Products(context.Background(), f)
	require.NoError(t, err)
	listFilter := products.got

	pdf, name, err := uc.Export(context.Background(), report.KindProducts, f)
	require.NoError(t, err)
	assert.Equal(t, listFilter, products.got)
	assert.NotEmpty(t, pdf)
	assert.Contains(t, name, "reporte_products_")

	require.Len(t, gen.doc.Rows, len(listed))
	assert.Equal(t, []string{"Café", "C1", "12000.00 COP", "4", "kg", "Activo"}, gen.doc.Rows[0])
	assert.Equal(t, len(gen.doc.Columns), len(gen.doc.Widths))
	assert.Contains(t, gen.doc.Filters, "Nombre: caf")
}

func TestExport_TipoDesconocido(t *testing.T) {
	_, _, err := report.NewUseCase(report.Repositories{}, &captureGenerator{}).Export(context.Background(), "clientes", report.Filter{})
	assert.Error(t, err)
}

func TestFilter_SinFechas(t *testing.T) {
	f, err := report.ParseFilter(query(nil))
	require.NoError(t, err)
	assert.Nil(t, f.MovementFilter().From)
	assert.Nil(t, f.ProductFilter().Active)
	assert.Empty(t, f.Describe())
}

type userRepo struct {
	repository.UserRepository
	list []*entity.User
}

func (r *userRepo) List(context.Context) ([]*entity.User, error) { return r.list, nil }

type roleRepo struct {
	repository.RoleRepository
	list []*entity.Role
}

func (r *roleRepo) List(context.Context) ([]*entity.Role, error) { return r.list, nil }

type supplierRepo struct {
	repository.SupplierRepository
	onlyActive bool
	list       []*entity.Supplier
}

func (r *supplierRepo) List(_ context.Context, onlyActive bool) ([]*entity.Supplier, error) {
	r.onlyActive = onlyActive
	return r.list, nil
}

type warehouseRepo struct {
	repository.WarehouseRepository
	list []*entity.Warehouse
}

func (r *warehouseRepo) List(context.Context, bool) ([]*entity.Warehouse, error) { return r.list, nil }

type categoryRepo struct {
	repository.CategoryRepository
	list []*entity.Category
}

func (r *categoryRepo) List(context.Context, bool) ([]*entity.Category, error) { return r.list, nil }

func catalogUseCase(gen report.TablePDFGenerator) (*report.UseCase, *supplierRepo) {
	suppliers := &supplierRepo{list: []*entity.Supplier{
		{ID: "s1", Name: "Lácteos del Valle", NIT: "900123456", Contact: "Marta", Active: true},
		{ID: "s2", Name: "Granos SAS", Active: false},
	}}
	return report.NewUseCase(report.Repositories{
		Users: &userRepo{list: []*entity.User{
			{ID: "u1", Username: "ana", Email: "ana@nova.co", FirstName: "Ana", LastName: "Ruiz", Active: true, IsSuperuser: true, CreatedAt: created},
			{ID: "u2", Username: "luis", Active: false, CreatedAt: created.AddDate(0, 1, 0)},
		}},
		Roles: &roleRepo{list: []*entity.Role{
			{ID: "r1", Name: "Administrador", Permissions: "productos_leer, ventas_crear", Active: true, CreatedAt: created},
			{ID: "r2", Name: "Vendedor", Permissions: "ventas_crear", Active: false, CreatedAt: created},
		}},
		Suppliers: suppliers,
		Warehouses: &warehouseRepo{list: []*entity.Warehouse{
			{ID: "w1", Name: "Principal", Number: "01", Location: "Cali", Capacity: decimal.NewFromInt(500), Active: true},
		}},
		Categories: &categoryRepo{list: []*entity.Category{
			{ID: "c1", Name: "Bebidas", Active: true},
			{ID: "c2", Name: "Lácteos", Active: true},
		}},
	}, gen), suppliers
}

func TestCatalogo_FiltraPorNombreYEstado(t *testing.T) {
	uc, suppliers := catalogUseCase(&captureGenerator{})
	ctx := context.Background()

	users, err := uc.Users(ctx, report.Filter{Name: "RUIZ"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ana", users[0].Username)

	users, err = uc.Users(ctx, report.Filter{Status: report.StatusInactive})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "luis", users[0].Username)

	from := created.AddDate(0, 0, 1)
	users, err = uc.Users(ctx, report.Filter{From: &from})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "luis", users[0].Username)

	roles, err := uc.Roles(ctx, report.Filter{Status: report.StatusActive})
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, []string{"productos_leer", "ventas_crear"}, roles[0].Permissions)

	list, err := uc.Suppliers(ctx, report.Filter{Name: "9001", Status: report.StatusActive})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, suppliers.onlyActive)

	list, err = uc.Suppliers(ctx, report.Filter{Status: report.StatusInactive})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Granos SAS", list[0].Name)
	assert.False(t, suppliers.onlyActive)

	cats, err := uc.Categories(ctx, report.Filter{Name: "láct"})
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Lácteos", cats[0].Name)

	empty, err := uc.Warehouses(ctx, report.Filter{Name: "bogotá"})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestCatalogo_Exportar(t *testing.T) {
	gen := &captureGenerator{}
	uc, _ := catalogUseCase(gen)

	cases := []struct {
		kind  string
		title string
		rows  int
		first []string
	}{
		{report.KindUsers, "Reporte de usuarios", 2, []string{"ana", "Ana Ruiz", "ana@nova.co", "Sí", "Activo"}},
		{report.KindRoles, "Reporte de roles", 2, []string{"Administrador", "", "2", "Activo"}},
		{report.KindSuppliers, "Reporte de proveedores", 2, []string{"Lácteos del Valle", "900123456", "Marta", "", "", "Activo"}},
		{report.KindWarehouses, "Reporte de almacenes", 1, []string{"Principal (01)", "Cali", "500.00", "Activo"}},
		{report.KindCategories, "Reporte de categorías", 2, []string{"Bebidas", "", "Activo"}},
	}
	for _, c := range cases {
		pdf, name, err := uc.Export(context.Background(), c.kind, report.Filter{})
		require.NoError(t, err, c.kind)
		assert.NotEmpty(t, pdf)
		assert.Contains(t, name, "reporte_"+c.kind+"_")
		assert.Equal(t, c.title, gen.doc.Title)
		assert.Equal(t, len(gen.doc.Columns), len(gen.doc.Widths), c.kind)
		require.Len(t, gen.doc.Rows, c.rows, c.kind)
		assert.Equal(t, c.first, gen.doc.Rows[0], c.kind)
	}
}
