package repository

import (
	"context"

	"github.com/jhoicas/nova-inventario/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del kardex (DIP).
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// List devuelve los movimientos en orden ascendente por fecha.
	List(ctx context.Context, f MovementFilter) ([]*entity.StockMovement, error)
}
