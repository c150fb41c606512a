package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/domain"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
)

// KardexUseCase consulta el historial de movimientos.
type KardexUseCase struct {
	repo repository.StockMovementRepository
}

// NewKardexUseCase construye el caso de uso.
func NewKardexUseCase(repo repository.StockMovementRepository) *KardexUseCase {
	return &KardexUseCase{repo: repo}
}

// QueryMovements devuelve los movimientos filtrados en orden ascendente por fecha.
// Todos los filtros son opcionales.
func (uc *KardexUseCase) QueryMovements(ctx context.Context, f repository.MovementFilter) ([]*entity.StockMovement, error) {
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, domain.NewValidationError("hasta", "debe ser posterior a desde")
	}
	return uc.repo.List(ctx, f)
}

// Query igual que QueryMovements pero en formato de respuesta.
func (uc *KardexUseCase) Query(ctx context.Context, productID string, from, to *time.Time) ([]dto.MovementResponse, error) {
	list, err := uc.QueryMovements(ctx, repository.MovementFilter{ProductID: productID, From: from, To: to})
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMovementResponse(m))
	}
	return out, nil
}
