package repository

import (
	"context"

	"github.com/jhoicas/nova-inventario/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto y bloquea la fila hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// Update actualiza datos de catálogo; no modifica Quantity.
	Update(ctx context.Context, product *entity.Product) error
	// SetQuantity persiste el stock (solo desde movimientos).
	SetQuantity(ctx context.Context, id string, quantity int) error
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, error)
	SoftDelete(ctx context.Context, id string) error
}
