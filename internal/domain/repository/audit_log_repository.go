package repository

import (
	"context"

	"github.com/jhoicas/nova-inventario/internal/domain/entity"
)

// AuditLogRepository registro append-only de acciones.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *entity.AuditLog) error
	// ListAll devuelve todas las entradas, más recientes primero. Sin paginación.
	ListAll(ctx context.Context) ([]*entity.AuditLog, error)
}
