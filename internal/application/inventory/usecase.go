package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/nova-inventario/internal/application/audit"
	"github.com/jhoicas/nova-inventario/internal/domain"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de kardex de forma transaccional,
// con bloqueo de fila del producto (SELECT FOR UPDATE) y Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	recorder *audit.Recorder
	now      func() time.Time
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, recorder *audit.Recorder) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, recorder: recorder, now: time.Now}
}

// EntryInput entrada de mercancía.
type EntryInput struct {
	ProductID string
	Quantity  int
	Reason    string
}

// RegisterEntry suma Quantity al stock del producto y guarda el movimiento de entrada.
func (uc *RegisterMovementUseCase) RegisterEntry(ctx context.Context, actor entity.Actor, in EntryInput) (*entity.StockMovement, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		reason = "entrada"
	}

	var mov *entity.StockMovement
	var productName string
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		productName = product.Name
		mov = &entity.StockMovement{
			ID:         uuid.New().String(),
			ProductID:  product.ID,
			Type:       entity.MovementIn,
			Quantity:   in.Quantity,
			PriorStock: product.Quantity,
			Date:       uc.now().Truncate(time.Microsecond),
			Reason:     reason,
			UserID:     actor.UserID,
		}
		if err := productRepo.SetQuantity(ctx, product.ID, product.Quantity+in.Quantity); err != nil {
			return err
		}
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		return nil, err
	}
	uc.recorder.Record(ctx, actor, audit.ModuleKardex, entity.AuditCreate,
		fmt.Sprintf("Entrada de %d unidades de %q por %s", in.Quantity, productName, actor.Name()))
	return mov, nil
}

// RegisterOutInTx ejecuta una salida usando los repositorios del caller (misma transacción).
// product debe haberse obtenido con GetForUpdate. Si no hay stock suficiente retorna
// ErrInsufficientStock sin modificar nada; el caller debe hacer rollback.
// date se usa tal cual como fecha del movimiento.
func (uc *RegisterMovementUseCase) RegisterOutInTx(
	ctx context.Context,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	product *entity.Product,
	quantity int,
	date time.Time,
	reason, userID string,
) (*entity.StockMovement, error) {
	prior := product.Quantity
	if !product.Decrement(quantity) {
		return nil, fmt.Errorf("%w para %s", domain.ErrInsufficientStock, product.Label())
	}
	if err := productRepo.SetQuantity(ctx, product.ID, product.Quantity); err != nil {
		product.Quantity = prior
		return nil, err
	}
	mov := &entity.StockMovement{
		ID:         uuid.New().String(),
		ProductID:  product.ID,
		Type:       entity.MovementOut,
		Quantity:   quantity,
		PriorStock: prior,
		Date:       date,
		Reason:     reason,
		UserID:     userID,
	}
	if err := movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}
	return mov, nil
}
