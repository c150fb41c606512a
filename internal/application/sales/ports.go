package sales

import (
	"context"
	"time"

	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción que incluye repos de inventario y ventas.
// Si fn retorna error se hace rollback de todo.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// InventoryUseCase integra ventas con inventario.
// RegisterOutInTx ejecuta una salida usando los repositorios del caller (misma transacción).
type InventoryUseCase interface {
	RegisterOutInTx(
		ctx context.Context,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		product *entity.Product,
		quantity int,
		date time.Time,
		reason, userID string,
	) (*entity.StockMovement, error)
}

// InvoiceLine línea de factura enriquecida con el producto.
type InvoiceLine struct {
	entity.SaleLine
	ProductName string
	ProductSKU  string
}

// InvoicePDFGenerator genera la factura de una venta en PDF.
type InvoicePDFGenerator interface {
	GenerateSaleInvoicePDF(ctx context.Context, sale *entity.Sale, seller string, lines []InvoiceLine) ([]byte, error)
}
