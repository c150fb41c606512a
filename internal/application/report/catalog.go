package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/application/usecase"
	"github.com/jhoicas/nova-inventario/internal/domain/access"
)

// Reportes de catálogo: usuarios, proveedores, almacenes, categorías y roles.
// Comparten nombre (subcadena sin distinguir mayúsculas) y estado; las fechas
// solo aplican a usuarios y roles, que guardan fecha de creación.

func (f Filter) matchName(values ...string) bool {
	if f.Name == "" {
		return true
	}
	needle := strings.ToLower(f.Name)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

func (f Filter) matchStatus(active bool) bool {
	switch f.Status {
	case StatusActive:
		return active
	case StatusInactive:
		return !active
	}
	return true
}

func (f Filter) matchDate(t time.Time) bool {
	if f.From != nil && t.Before(*f.From) {
		return false
	}
	if f.To != nil && t.After(*f.To) {
		return false
	}
	return true
}

// Users usuarios filtrados por username, email o nombre completo.
func (uc *UseCase) Users(ctx context.Context, f Filter) ([]dto.UserResponse, error) {
	list, err := uc.repos.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []dto.UserResponse{}
	for _, u := range list {
		if f.matchName(u.Username, u.Email, u.FullName()) && f.matchStatus(u.Active) && f.matchDate(u.CreatedAt) {
			out = append(out, *usecase.ToUserResponse(u))
		}
	}
	return out, nil
}

// Roles roles filtrados por nombre.
func (uc *UseCase) Roles(ctx context.Context, f Filter) ([]dto.RoleResponse, error) {
	list, err := uc.repos.Roles.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []dto.RoleResponse{}
	for _, r := range list {
		if f.matchName(r.Name) && f.matchStatus(r.Active) && f.matchDate(r.CreatedAt) {
			out = append(out, *usecase.ToRoleResponse(r))
		}
	}
	return out, nil
}

// Suppliers proveedores filtrados por nombre, contacto o NIT.
func (uc *UseCase) Suppliers(ctx context.Context, f Filter) ([]dto.SupplierResponse, error) {
	list, err := uc.repos.Suppliers.List(ctx, f.Status == StatusActive)
	if err != nil {
		return nil, err
	}
	out := []dto.SupplierResponse{}
	for _, s := range list {
		if f.matchName(s.Name, s.Contact, s.NIT) && f.matchStatus(s.Active) {
			out = append(out, *usecase.ToSupplierResponse(s))
		}
	}
	return out, nil
}

// Warehouses almacenes filtrados por nombre, número o ubicación.
func (uc *UseCase) Warehouses(ctx context.Context, f Filter) ([]dto.WarehouseResponse, error) {
	list, err := uc.repos.Warehouses.List(ctx, f.Status == StatusActive)
	if err != nil {
		return nil, err
	}
	out := []dto.WarehouseResponse{}
	for _, w := range list {
		if f.matchName(w.Name, w.Number, w.Location) && f.matchStatus(w.Active) {
			out = append(out, *usecase.ToWarehouseResponse(w))
		}
	}
	return out, nil
}

// Categories categorías filtradas por nombre.
func (uc *UseCase) Categories(ctx context.Context, f Filter) ([]dto.CategoryResponse, error) {
	list, err := uc.repos.Categories.List(ctx, f.Status == StatusActive)
	if err != nil {
		return nil, err
	}
	out := []dto.CategoryResponse{}
	for _, c := range list {
		if f.matchName(c.Name) && f.matchStatus(c.Active) {
			out = append(out, *usecase.ToCategoryResponse(c))
		}
	}
	return out, nil
}

func (uc *UseCase) usersDocument(ctx context.Context, f Filter) (TableDocument, error) {
	list, err := uc.Users(ctx, f)
	if err != nil {
		return TableDocument{}, err
	}
	doc := TableDocument{
		Title:   "Reporte de usuarios",
		Columns: []string{"Usuario", "Nombre", "Email", "Admin", "Estado"},
		Widths:  []int{2, 3, 3, 2, 2},
	}
	for _, u := range list {
		doc.Rows = append(doc.Rows, []string{u.Username, u.FullName, u.Email, yesNo(u.IsSuperuser), statusLabel(u.Active)})
	}
	doc.Footer = []string{fmt.Sprintf("Total usuarios: %d", len(list))}
	return doc, nil
}

func (uc *UseCase) rolesDocument(ctx context.Context, f Filter) (TableDocument, error) {
	list, err := uc.Roles(ctx, f)
	if err != nil {
		return TableDocument{}, err
	}
	doc := TableDocument{
		Title:   "Reporte de roles",
		Columns: []string{"Rol", "Descripción", "Permisos", "Estado"},
		Widths:  []int{3, 5, 2, 2},
	}
	for _, r := range list {
		doc.Rows = append(doc.Rows, []string{r.Name, r.Description, strconv.Itoa(len(r.Permissions)), statusLabel(r.Active)})
	}
	doc.Footer = []string{
		fmt.Sprintf("Total roles: %d", len(list)),
		fmt.Sprintf("Permisos posibles por rol: %d", len(access.Modules)*len(access.Actions)),
	}
	return doc, nil
}

func (uc *UseCase) suppliersDocument(ctx context.Context, f Filter) (TableDocument, error) {
	list, err := uc.Suppliers(ctx, f)
	if err != nil {
		return TableDocument{}, err
	}
	doc := TableDocument{
		Title:   "Reporte de proveedores",
		Columns: []string{"Proveedor", "NIT", "Contacto", "Teléfono", "Email", "Estado"},
		Widths:  []int{3, 2, 2, 1, 2, 2},
	}
	for _, s := range list {
		doc.Rows = append(doc.Rows, []string{s.Name, s.NIT, s.Contact, s.Phone, s.Email, statusLabel(s.Active)})
	}
	doc.Footer = []string{fmt.Sprintf("Total proveedores: %d", len(list))}
	return doc, nil
}

func (uc *UseCase) warehousesDocument(ctx context.Context, f Filter) (TableDocument, error) {
	list, err := uc.Warehouses(ctx, f)
	if err != nil {
		return TableDocument{}, err
	}
	doc := TableDocument{
		Title:   "Reporte de almacenes",
		Columns: []string{"Almacén", "Ubicación", "Capacidad", "Estado"},
		Widths:  []int{4, 4, 2, 2},
	}
	for _, w := range list {
		doc.Rows = append(doc.Rows, []string{w.Label, w.Location, w.Capacity.StringFixed(2), statusLabel(w.Active)})
	}
	doc.Footer = []string{fmt.Sprintf("Total almacenes: %d", len(list))}
	return doc, nil
}

func (uc *UseCase) categoriesDocument(ctx context.Context, f Filter) (TableDocument, error) {
	list, err := uc.Categories(ctx, f)
	if err != nil {
		return TableDocument{}, err
	}
	doc := TableDocument{
		Title:   "Reporte de categorías",
		Columns: []string{"Categoría", "Descripción", "Estado"},
		Widths:  []int{4, 6, 2},
	}
	for _, c := range list {
		doc.Rows = append(doc.Rows, []string{c.Name, c.Description, statusLabel(c.Active)})
	}
	doc.Footer = []string{fmt.Sprintf("Total categorías: %d", len(list))}
	return doc, nil
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
