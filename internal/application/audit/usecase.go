package audit

import (
	"context"

	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
)

// UseCase consulta del log de auditoría.
type UseCase struct {
	repo repository.AuditLogRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.AuditLogRepository) *UseCase {
	return &UseCase{repo: repo}
}

// ListAll devuelve todas las entradas, más recientes primero.
// No pagina: con volúmenes grandes esta respuesta crece sin límite.
func (uc *UseCase) ListAll(ctx context.Context) ([]dto.AuditLogResponse, error) {
	entries, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AuditLogResponse{Detail: e.Detail, Date: e.CreatedAt})
	}
	return out, nil
}
