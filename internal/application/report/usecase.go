// Package report listados filtrados y su exportación a PDF.
package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/application/inventory"
	"github.com/jhoicas/nova-inventario/internal/application/sales"
	"github.com/jhoicas/nova-inventario/internal/application/usecase"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
)

// Tipos de reporte; coinciden con el último segmento de /api/reports/<tipo>.
const (
	KindProducts   = "products"
	KindSales      = "sales"
	KindKardex     = "kardex"
	KindUsers      = "users"
	KindSuppliers  = "suppliers"
	KindWarehouses = "warehouses"
	KindCategories = "categories"
	KindRoles      = "roles"
)

// Repositories fuentes de datos de los reportes. Un campo nil deja su reporte
// sin fuente; solo se consulta cuando se pide ese tipo.
type Repositories struct {
	Products   repository.ProductRepository
	Sales      repository.SaleRepository
	Movements  repository.StockMovementRepository
	Users      repository.UserRepository
	Roles      repository.RoleRepository
	Categories repository.CategoryRepository
	Suppliers  repository.SupplierRepository
	Warehouses repository.WarehouseRepository
}

// UseCase genera los reportes filtrados y su exportación.
type UseCase struct {
	repos     Repositories
	generator TablePDFGenerator
	now       func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repos Repositories, generator TablePDFGenerator) *UseCase {
	return &UseCase{repos: repos, generator: generator, now: time.Now}
}

// Products listado de productos filtrado.
func (uc *UseCase) Products(ctx context.Context, f Filter) ([]dto.ProductResponse, error) {
	list, err := uc.repos.Products.List(ctx, f.ProductFilter())
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *usecase.ToProductResponse(p))
	}
	return out, nil
}

// Sales listado de ventas filtrado.
func (uc *UseCase) Sales(ctx context.Context, f Filter) ([]dto.SaleResponse, error) {
	list, err := uc.repos.Sales.List(ctx, f.SaleFilter())
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, sales.ToSaleResponse(s))
	}
	return out, nil
}

// Kardex movimientos filtrados en orden cronológico.
func (uc *UseCase) Kardex(ctx context.Context, f Filter) ([]dto.MovementResponse, error) {
	list, err := uc.repos.Movements.List(ctx, f.MovementFilter())
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, inventory.ToMovementResponse(m))
	}
	return out, nil
}

// Export genera el PDF del reporte kind con el mismo filtro del listado.
// Retorna los bytes y el nombre de archivo sugerido.
func (uc *UseCase) Export(ctx context.Context, kind string, f Filter) (pdfBytes []byte, filename string, err error) {
	var doc TableDocument
	switch kind {
	case KindProducts:
		doc, err = uc.productsDocument(ctx, f)
	case KindSales:
		doc, err = uc.salesDocument(ctx, f)
	case KindKardex:
		doc, err = uc.kardexDocument(ctx, f)
	case KindUsers:
		doc, err = uc.usersDocument(ctx, f)
	case KindSuppliers:
		doc, err = uc.suppliersDocument(ctx, f)
	case KindWarehouses:
		doc, err = uc.warehousesDocument(ctx, f)
	case KindCategories:
		doc, err = uc.categoriesDocument(ctx, f)
	case KindRoles:
		doc, err = uc.rolesDocument(ctx, f)
	default:
		return nil, "", fmt.Errorf("reporte desconocido: %q", kind)
	}
	if err != nil {
		return nil, "", err
	}
	doc.Filters = f.Describe()
	doc.Footer = append(doc.Footer, "Generado el "+uc.now().Format("2006-01-02 15:04"))

	pdfBytes, err = uc.generator.GenerateTablePDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("reporte_%s_%s.pdf", kind, uc.now().Format("20060102")), nil
}

func (uc *UseCase) productsDocument(ctx context.Context, f Filter) (TableDocument, error) {
	list, err := uc.Products(ctx, f)
	if err != nil {
		return TableDocument{}, err
	}
	doc := TableDocument{
		Title:   "Reporte de productos",
		Columns: []string{"Nombre", "SKU", "Precio", "Cantidad", "Unidad", "Estado"},
		Widths:  []int{3, 2, 2, 2, 1, 2},
	}
	for _, p := range list {
		doc.Rows = append(doc.Rows, []string{
			p.Name,
			p.SKU,
			p.UnitPrice.StringFixed(2) + " " + p.Currency,
			strconv.Itoa(p.Quantity),
			p.Unit,
			statusLabel(p.Active),
		})
	}
	doc.Footer = []string{fmt.Sprintf("Total productos: %d", len(list))}
	return doc, nil
}

func (uc *UseCase) salesDocument(ctx context.Context, f Filter) (TableDocument, error) {
	list, err := uc.Sales(ctx, f)
	if err != nil {
		return TableDocument{}, err
	}
	doc := TableDocument{
		Title:   "Reporte de ventas",
		Columns: []string{"Fecha", "Venta", "Líneas", "Total (COP)"},
		Widths:  []int{3, 5, 1, 3},
	}
	total := decimal.Zero
	for _, s := range list {
		doc.Rows = append(doc.Rows, []string{
			s.Date.Format("2006-01-02 15:04"),
			s.ID,
			strconv.Itoa(len(s.Lines)),
			s.Total.StringFixed(2),
		})
		total = total.Add(s.Total)
	}
	doc.Footer = []string{
		fmt.Sprintf("Total ventas: %d", len(list)),
		"Monto total: " + total.StringFixed(2) + " COP",
	}
	return doc, nil
}

func (uc *UseCase) kardexDocument(ctx context.Context, f Filter) (TableDocument, error) {
	list, err := uc.Kardex(ctx, f)
	if err != nil {
		return TableDocument{}, err
	}
	doc := TableDocument{
		Title:   "Reporte de kardex",
		Columns: []string{"Fecha", "Producto", "Tipo", "Cantidad", "Anterior", "Actual", "Motivo"},
		Widths:  []int{2, 3, 1, 1, 1, 1, 3},
	}
	names := map[string]string{}
	for _, m := range list {
		name, ok := names[m.ProductID]
		if !ok {
			name = m.ProductID
			if p, pErr := uc.repos.Products.GetByID(ctx, m.ProductID); pErr == nil && p != nil {
				name = p.Label()
			}
			names[m.ProductID] = name
		}
		doc.Rows = append(doc.Rows, []string{
			m.Date.Format("2006-01-02 15:04"),
			name,
			m.Type,
			strconv.Itoa(m.Quantity),
			strconv.Itoa(m.PriorStock),
			strconv.Itoa(m.CurrentStock),
			m.Reason,
		})
	}
	doc.Footer = []string{fmt.Sprintf("Total movimientos: %d", len(list))}
	return doc, nil
}

func statusLabel(active bool) string {
	if active {
		return "Activo"
	}
	return "Inactivo"
}
