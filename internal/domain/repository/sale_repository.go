package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nova-inventario/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y SaleLine (DIP).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	CreateLine(ctx context.Context, line *entity.SaleLine) error
	UpdateTotal(ctx context.Context, saleID string, total decimal.Decimal) error
	// GetByID devuelve la venta con sus líneas, o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context, f SaleFilter) ([]*entity.Sale, error)
}
