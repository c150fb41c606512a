package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/nova-inventario/internal/application/audit"
	"github.com/jhoicas/nova-inventario/internal/application/auth"
	"github.com/jhoicas/nova-inventario/internal/application/inventory"
	"github.com/jhoicas/nova-inventario/internal/application/report"
	"github.com/jhoicas/nova-inventario/internal/application/sales"
	"github.com/jhoicas/nova-inventario/internal/application/usecase"
	infrapdf "github.com/jhoicas/nova-inventario/internal/infrastructure/pdf"
	"github.com/jhoicas/nova-inventario/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/nova-inventario/internal/interfaces/http"
	"github.com/jhoicas/nova-inventario/pkg/config"
	"github.com/jhoicas/nova-inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.Migrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migración del esquema")
		}
		log.Info().Msg("esquema aplicado")
	}

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recorder := audit.NewRecorder(auditRepo, log)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	permissions := usecase.NewPermissionService(userRepo, roleRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, recorder)
	createSaleUC := sales.NewCreateSaleUseCase(txRunner, registerMovementUC, recorder)

	authUC := auth.NewAuthUseCase(userRepo, roleRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	mountSwagger(app, swaggerFile, log)

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db_unavailable", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		Permissions:      permissions,
		RoleUC:           usecase.NewRoleUseCase(roleRepo, recorder),
		UserUC:           usecase.NewUserUseCase(userRepo, roleRepo, recorder),
		CategoryUC:       usecase.NewCategoryUseCase(categoryRepo, recorder),
		SupplierUC:       usecase.NewSupplierUseCase(supplierRepo, recorder),
		WarehouseUC:      usecase.NewWarehouseUseCase(warehouseRepo, recorder),
		ProductUC:        usecase.NewProductUseCase(productRepo, recorder),
		CreateSale:       createSaleUC,
		SaleUC:           sales.NewUseCase(saleRepo, productRepo, userRepo, pdfGenerator),
		Kardex:           inventory.NewKardexUseCase(movementRepo),
		RegisterMovement: registerMovementUC,
		ReportUC: report.NewUseCase(report.Repositories{
			Products:   productRepo,
			Sales:      saleRepo,
			Movements:  movementRepo,
			Users:      userRepo,
			Roles:      roleRepo,
			Categories: categoryRepo,
			Suppliers:  supplierRepo,
			Warehouses: warehouseRepo,
		}, pdfGenerator),
		AuditUC:          audit.NewUseCase(auditRepo),
		Recorder:         recorder,
		JWTSecret:        cfg.JWT.Secret,
		Log:              log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
