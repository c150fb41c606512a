package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo registro de auditoría append-only.
type AuditLogRepo struct {
	q Querier
}

func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create inserta la entrada. Si el usuario ya no existe (p. ej. se eliminó a sí mismo
// en la misma petición) user_id queda NULL en vez de violar la FK.
func (r *AuditLogRepo) Create(ctx context.Context, e *entity.AuditLog) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO audit_logs (id, user_id, module, action, detail, created_at)
		VALUES ($1, (SELECT id FROM users WHERE id = $2::uuid), $3, $4, $5, $6)`,
		e.ID, nullIfEmpty(e.UserID), e.Module, e.Action, e.Detail, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListAll todas las entradas, más recientes primero.
func (r *AuditLogRepo) ListAll(ctx context.Context) ([]*entity.AuditLog, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, user_id, module, action, detail, created_at FROM audit_logs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var e entity.AuditLog
		var userID *string
		if err := rows.Scan(&e.ID, &userID, &e.Module, &e.Action, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		e.UserID = fromNull(userID)
		list = append(list, &e)
	}
	return list, rows.Err()
}
