package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nova-inventario/internal/application/audit"
	"github.com/jhoicas/nova-inventario/internal/application/auth"
	"github.com/jhoicas/nova-inventario/internal/application/inventory"
	"github.com/jhoicas/nova-inventario/internal/application/report"
	"github.com/jhoicas/nova-inventario/internal/application/sales"
	"github.com/jhoicas/nova-inventario/internal/application/usecase"
	"github.com/jhoicas/nova-inventario/internal/domain/access"
	"github.com/jhoicas/nova-inventario/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	Permissions      *usecase.PermissionService
	RoleUC           *usecase.RoleUseCase
	UserUC           *usecase.UserUseCase
	CategoryUC       *usecase.CategoryUseCase
	SupplierUC       *usecase.SupplierUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	ProductUC        *usecase.ProductUseCase
	CreateSale       *sales.CreateSaleUseCase
	SaleUC           *sales.UseCase
	Kardex           *inventory.KardexUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ReportUC         *report.UseCase
	AuditUC          *audit.UseCase
	Recorder         *audit.Recorder
	JWTSecret        string
	Log              *logger.Logger
}

// Router registra las rutas de la API. Cada ruta protegida exige el permiso
// modulo_accion que corresponde a su método: GET leer, POST crear, PUT actualizar, DELETE eliminar.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuditMiddleware(deps.Recorder))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))
	perm := func(m access.Module, a access.Action) fiber.Handler {
		return RequirePermission(deps.Permissions, m, a, deps.Log)
	}

	protected.Get("/dashboard", NewDashboardHandler(deps.Permissions).Get)

	// Roles
	roles := protected.Group("/roles")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/matrix", perm(access.ModuleRoles, access.ActionRead), roleHandler.Matrix)
	crud(roles, perm, access.ModuleRoles, crudHandlers{
		create: roleHandler.Create, list: roleHandler.List, get: roleHandler.GetByID,
		update: roleHandler.Update, remove: roleHandler.Delete,
	})

	// Users
	userHandler := NewUserHandler(deps.UserUC)
	crud(protected.Group("/users"), perm, access.ModuleUsers, crudHandlers{
		create: userHandler.Create, list: userHandler.List, get: userHandler.GetByID,
		update: userHandler.Update, remove: userHandler.Delete,
	})

	// Categories
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	crud(protected.Group("/categories"), perm, access.ModuleCategories, crudHandlers{
		create: categoryHandler.Create, list: categoryHandler.List, get: categoryHandler.GetByID,
		update: categoryHandler.Update, remove: categoryHandler.Delete,
	})

	// Suppliers
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	crud(protected.Group("/suppliers"), perm, access.ModuleSuppliers, crudHandlers{
		create: supplierHandler.Create, list: supplierHandler.List, get: supplierHandler.GetByID,
		update: supplierHandler.Update, remove: supplierHandler.Delete,
	})

	// Warehouses
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	crud(protected.Group("/warehouses"), perm, access.ModuleWarehouses, crudHandlers{
		create: warehouseHandler.Create, list: warehouseHandler.List, get: warehouseHandler.GetByID,
		update: warehouseHandler.Update, remove: warehouseHandler.Delete,
	})

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	crud(protected.Group("/products"), perm, access.ModuleProducts, crudHandlers{
		create: productHandler.Create, list: productHandler.List, get: productHandler.GetByID,
		update: productHandler.Update, remove: productHandler.Delete,
	})

	// Sales: sin DELETE
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.SaleUC)
	salesGroup.Post("/", perm(access.ModuleSales, access.ActionCreate), saleHandler.Create)
	salesGroup.Get("/", perm(access.ModuleSales, access.ActionRead), saleHandler.List)
	salesGroup.Get("/:id/invoice", perm(access.ModuleSales, access.ActionRead), saleHandler.Invoice)
	salesGroup.Get("/:id", perm(access.ModuleSales, access.ActionRead), saleHandler.GetByID)
	salesGroup.Put("/:id", perm(access.ModuleSales, access.ActionUpdate), saleHandler.Update)

	// Kardex
	kardex := protected.Group("/kardex")
	kardexHandler := NewKardexHandler(deps.Kardex, deps.RegisterMovement)
	kardex.Get("/", perm(access.ModuleKardex, access.ActionRead), kardexHandler.Query)
	kardex.Post("/entradas", perm(access.ModuleKardex, access.ActionCreate), kardexHandler.RegisterEntry)

	// Reports
	reports := protected.Group("/reports", perm(access.ModuleReports, access.ActionRead))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/products", reportHandler.Products)
	reports.Get("/sales", reportHandler.Sales)
	reports.Get("/kardex", reportHandler.Kardex)
	reports.Get("/users", reportHandler.Users)
	reports.Get("/suppliers", reportHandler.Suppliers)
	reports.Get("/warehouses", reportHandler.Warehouses)
	reports.Get("/categories", reportHandler.Categories)
	reports.Get("/roles", reportHandler.Roles)

	// Audit log
	protected.Get("/audit-logs", perm(access.ModuleAudit, access.ActionRead), NewAuditHandler(deps.AuditUC).List)
}

type crudHandlers struct {
	create, list, get, update, remove fiber.Handler
}

// crud registra las cinco rutas estándar con su permiso.
func crud(g fiber.Router, perm func(access.Module, access.Action) fiber.Handler, m access.Module, h crudHandlers) {
	g.Post("/", perm(m, access.ActionCreate), h.create)
	g.Get("/", perm(m, access.ActionRead), h.list)
	g.Get("/:id", perm(m, access.ActionRead), h.get)
	g.Put("/:id", perm(m, access.ActionUpdate), h.update)
	g.Delete("/:id", perm(m, access.ActionDelete), h.remove)
}
