package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/nova-inventario/internal/domain"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
)

// DateLayout formato de los parámetros desde/hasta.
const DateLayout = "2006-01-02"

// Valores aceptados en el parámetro estado.
const (
	StatusActive   = "activo"
	StatusInactive = "inactivo"
)

// Filter filtros de los reportes. El mismo valor alimenta el listado JSON y la
// exportación a PDF.
type Filter struct {
	Name       string
	CategoryID string
	SupplierID string
	Status     string
	ProductID  string
	UserID     string
	From       *time.Time
	To         *time.Time // inclusivo: fin del día
}

// ParseFilter lee los parámetros nombre, categoria, proveedor, estado, producto,
// usuario, desde y hasta. get suele ser c.Query del handler.
func ParseFilter(get func(key string) string) (Filter, error) {
	f := Filter{
		Name:       strings.TrimSpace(get("nombre")),
		CategoryID: strings.TrimSpace(get("categoria")),
		SupplierID: strings.TrimSpace(get("proveedor")),
		Status:     strings.ToLower(strings.TrimSpace(get("estado"))),
		ProductID:  strings.TrimSpace(get("producto")),
		UserID:     strings.TrimSpace(get("usuario")),
	}
	verr := &domain.ValidationError{Fields: map[string]string{}}
	switch f.Status {
	case "", StatusActive, StatusInactive:
	default:
		verr.Fields["estado"] = fmt.Sprintf("debe ser %q o %q", StatusActive, StatusInactive)
	}
	for param, id := range map[string]string{
		"categoria": f.CategoryID,
		"proveedor": f.SupplierID,
		"producto":  f.ProductID,
		"usuario":   f.UserID,
	} {
		if id != "" && uuid.Validate(id) != nil {
			verr.Fields[param] = "identificador inválido"
		}
	}
	if raw := strings.TrimSpace(get("desde")); raw != "" {
		t, err := time.ParseInLocation(DateLayout, raw, time.Local)
		if err != nil {
			verr.Fields["desde"] = "formato esperado AAAA-MM-DD"
		} else {
			f.From = &t
		}
	}
	if raw := strings.TrimSpace(get("hasta")); raw != "" {
		t, err := time.ParseInLocation(DateLayout, raw, time.Local)
		if err != nil {
			verr.Fields["hasta"] = "formato esperado AAAA-MM-DD"
		} else {
			end := t.AddDate(0, 0, 1).Add(-time.Microsecond)
			f.To = &end
		}
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		verr.Fields["hasta"] = "debe ser posterior a desde"
	}
	if len(verr.Fields) > 0 {
		return Filter{}, verr
	}
	return f, nil
}

// ProductFilter traduce al filtro del repositorio de productos.
func (f Filter) ProductFilter() repository.ProductFilter {
	pf := repository.ProductFilter{
		Name:       f.Name,
		CategoryID: f.CategoryID,
		SupplierID: f.SupplierID,
		From:       f.From,
		To:         f.To,
	}
	switch f.Status {
	case StatusActive:
		v := true
		pf.Active = &v
	case StatusInactive:
		v := false
		pf.Active = &v
	}
	return pf
}

// SaleFilter traduce al filtro del repositorio de ventas.
func (f Filter) SaleFilter() repository.SaleFilter {
	return repository.SaleFilter{UserID: f.UserID, From: f.From, To: f.To}
}

// MovementFilter traduce al filtro del kardex.
func (f Filter) MovementFilter() repository.MovementFilter {
	return repository.MovementFilter{ProductID: f.ProductID, From: f.From, To: f.To}
}

// Describe filtros aplicados, legibles para el encabezado del PDF.
func (f Filter) Describe() []string {
	var out []string
	add := func(label, v string) {
		if v != "" {
			out = append(out, label+": "+v)
		}
	}
	add("Nombre", f.Name)
	add("Categoría", f.CategoryID)
	add("Proveedor", f.SupplierID)
	add("Estado", f.Status)
	add("Producto", f.ProductID)
	add("Usuario", f.UserID)
	if f.From != nil {
		add("Desde", f.From.Format(DateLayout))
	}
	if f.To != nil {
		add("Hasta", f.To.Format(DateLayout))
	}
	return out
}
