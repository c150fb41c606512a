package repository

import (
	"context"

	"github.com/jhoicas/nova-inventario/internal/domain/entity"
)

// RoleRepository define el puerto de persistencia para Role (DIP).
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	GetByID(ctx context.Context, id string) (*entity.Role, error)
	Update(ctx context.Context, role *entity.Role) error
	List(ctx context.Context) ([]*entity.Role, error)
	// SoftDelete marca el rol como inactivo (estado=false).
	SoftDelete(ctx context.Context, id string) error
}
