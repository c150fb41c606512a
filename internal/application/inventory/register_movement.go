package inventory

import (
	"context"

	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
)

// RegisterEntryFromRequest adapta el request HTTP al caso de uso RegisterEntry.
func (uc *RegisterMovementUseCase) RegisterEntryFromRequest(ctx context.Context, actor entity.Actor, in dto.StockEntryRequest) (*dto.MovementResponse, error) {
	mov, err := uc.RegisterEntry(ctx, actor, EntryInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
	})
	if err != nil {
		return nil, err
	}
	out := ToMovementResponse(mov)
	return &out, nil
}

// ToMovementResponse convierte un movimiento, derivando el stock resultante.
func ToMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		Type:         m.Type,
		Quantity:     m.Quantity,
		PriorStock:   m.PriorStock,
		CurrentStock: m.CurrentStock(),
		Date:         m.Date,
		Reason:       m.Reason,
		UserID:       m.UserID,
	}
}
