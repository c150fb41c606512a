package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nova-inventario/internal/application/report"
)

// ReportHandler reportes filtrados; con exportar=1 responde el PDF.
type ReportHandler struct {
	uc *report.UseCase
}

func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Products godoc
// @Summary      Reporte de productos
// @Tags         reports
// @Security     Bearer
// @Produce      json,application/pdf
// @Param        nombre     query  string  false  "Subcadena del nombre"
// @Param        categoria  query  string  false  "ID de categoría"
// @Param        proveedor  query  string  false  "ID de proveedor"
// @Param        estado     query  string  false  "activo | inactivo"
// @Param        desde      query  string  false  "YYYY-MM-DD"
// @Param        hasta      query  string  false  "YYYY-MM-DD"
// @Param        exportar   query  int     false  "1 para descargar PDF"
// @Success      200  {array}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/products [get]
func (h *ReportHandler) Products(c *fiber.Ctx) error {
	return h.serve(c, report.KindProducts, func(f report.Filter) (any, error) {
		return h.uc.Products(c.UserContext(), f)
	})
}

// Sales godoc
// @Summary      Reporte de ventas
// @Tags         reports
// @Security     Bearer
// @Produce      json,application/pdf
// @Param        usuario   query  string  false  "ID del vendedor"
// @Param        desde     query  string  false  "YYYY-MM-DD"
// @Param        hasta     query  string  false  "YYYY-MM-DD"
// @Param        exportar  query  int     false  "1 para descargar PDF"
// @Success      200  {array}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	return h.serve(c, report.KindSales, func(f report.Filter) (any, error) {
		return h.uc.Sales(c.UserContext(), f)
	})
}

// Kardex godoc
// @Summary      Reporte de kardex
// @Tags         reports
// @Security     Bearer
// @Produce      json,application/pdf
// @Param        producto  query  string  false  "ID del producto"
// @Param        desde     query  string  false  "YYYY-MM-DD"
// @Param        hasta     query  string  false  "YYYY-MM-DD"
// @Param        exportar  query  int     false  "1 para descargar PDF"
// @Success      200  {array}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/kardex [get]
func (h *ReportHandler) Kardex(c *fiber.Ctx) error {
	return h.serve(c, report.KindKardex, func(f report.Filter) (any, error) {
		return h.uc.Kardex(c.UserContext(), f)
	})
}

// Users godoc
// @Summary      Reporte de usuarios
// @Tags         reports
// @Security     Bearer
// @Produce      json,application/pdf
// @Param        nombre    query  string  false  "Subcadena de username, email o nombre"
// @Param        estado    query  string  false  "activo | inactivo"
// @Param        desde     query  string  false  "YYYY-MM-DD (fecha de creación)"
// @Param        hasta     query  string  false  "YYYY-MM-DD (fecha de creación)"
// @Param        exportar  query  int     false  "1 para descargar PDF"
// @Success      200  {array}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/users [get]
func (h *ReportHandler) Users(c *fiber.Ctx) error {
	return h.serve(c, report.KindUsers, func(f report.Filter) (any, error) {
		return h.uc.Users(c.UserContext(), f)
	})
}

// Suppliers godoc
// @Summary      Reporte de proveedores
// @Tags         reports
// @Security     Bearer
// @Produce      json,application/pdf
// @Param        nombre    query  string  false  "Subcadena de nombre, contacto o NIT"
// @Param        estado    query  string  false  "activo | inactivo"
// @Param        exportar  query  int     false  "1 para descargar PDF"
// @Success      200  {array}  dto.SupplierResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/suppliers [get]
func (h *ReportHandler) Suppliers(c *fiber.Ctx) error {
	return h.serve(c, report.KindSuppliers, func(f report.Filter) (any, error) {
		return h.uc.Suppliers(c.UserContext(), f)
	})
}

// Warehouses godoc
// @Summary      Reporte de almacenes
// @Tags         reports
// @Security     Bearer
// @Produce      json,application/pdf
// @Param        nombre    query  string  false  "Subcadena de nombre, número o ubicación"
// @Param        estado    query  string  false  "activo | inactivo"
// @Param        exportar  query  int     false  "1 para descargar PDF"
// @Success      200  {array}  dto.WarehouseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/warehouses [get]
func (h *ReportHandler) Warehouses(c *fiber.Ctx) error {
	return h.serve(c, report.KindWarehouses, func(f report.Filter) (any, error) {
		return h.uc.Warehouses(c.UserContext(), f)
	})
}

// Categories godoc
// @Summary      Reporte de categorías
// @Tags         reports
// @Security     Bearer
// @Produce      json,application/pdf
// @Param        nombre    query  string  false  "Subcadena del nombre"
// @Param        estado    query  string  false  "activo | inactivo"
// @Param        exportar  query  int     false  "1 para descargar PDF"
// @Success      200  {array}  dto.CategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/categories [get]
func (h *ReportHandler) Categories(c *fiber.Ctx) error {
	return h.serve(c, report.KindCategories, func(f report.Filter) (any, error) {
		return h.uc.Categories(c.UserContext(), f)
	})
}

// Roles godoc
// @Summary      Reporte de roles
// @Tags         reports
// @Security     Bearer
// @Produce      json,application/pdf
// @Param        nombre    query  string  false  "Subcadena del nombre"
// @Param        estado    query  string  false  "activo | inactivo"
// @Param        exportar  query  int     false  "1 para descargar PDF"
// @Success      200  {array}  dto.RoleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/roles [get]
func (h *ReportHandler) Roles(c *fiber.Ctx) error {
	return h.serve(c, report.KindRoles, func(f report.Filter) (any, error) {
		return h.uc.Roles(c.UserContext(), f)
	})
}

// serve parsea el filtro una sola vez y lo usa para el listado o para el PDF.
func (h *ReportHandler) serve(c *fiber.Ctx, kind string, list func(report.Filter) (any, error)) error {
	f, err := report.ParseFilter(queryGetter(c))
	if err != nil {
		return writeError(c, err)
	}
	if c.Query("exportar") == "1" {
		pdfBytes, filename, err := h.uc.Export(c.UserContext(), kind, f)
		if err != nil {
			return writeError(c, err)
		}
		return sendPDF(c, pdfBytes, filename)
	}
	out, err := list(f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

