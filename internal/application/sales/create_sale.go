// Package sales casos de uso del motor de ventas.
package sales

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nova-inventario/internal/application/audit"
	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/domain"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
	domsales "github.com/jhoicas/nova-inventario/internal/domain/sales"
)

// LineInput par (producto, cantidad) de una venta.
type LineInput struct {
	ProductID string
	Quantity  int
}

// LinesFromRequest arma las líneas desde Items o desde los arreglos paralelos
// ProductIDs/Quantities. Arreglos de distinta longitud son una venta mal formada.
func LinesFromRequest(in dto.CreateSaleRequest) ([]LineInput, error) {
	if len(in.Items) > 0 {
		if len(in.ProductIDs) > 0 || len(in.Quantities) > 0 {
			return nil, fmt.Errorf("%w: use items o product_ids/quantities, no ambos", domain.ErrMalformedSale)
		}
		lines := make([]LineInput, 0, len(in.Items))
		for _, it := range in.Items {
			lines = append(lines, LineInput{ProductID: it.ProductID, Quantity: it.Quantity})
		}
		return lines, nil
	}
	if len(in.ProductIDs) != len(in.Quantities) {
		return nil, fmt.Errorf("%w: %d productos y %d cantidades", domain.ErrMalformedSale, len(in.ProductIDs), len(in.Quantities))
	}
	lines := make([]LineInput, 0, len(in.ProductIDs))
	for i := range in.ProductIDs {
		lines = append(lines, LineInput{ProductID: in.ProductIDs[i], Quantity: in.Quantities[i]})
	}
	return lines, nil
}

// CreateSaleUseCase registra una venta y descuenta el inventario en una sola transacción.
type CreateSaleUseCase struct {
	txRunner    SaleTxRunner
	inventoryUC InventoryUseCase
	recorder    *audit.Recorder
	now         func() time.Time
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner SaleTxRunner, inventoryUC InventoryUseCase, recorder *audit.Recorder) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:    txRunner,
		inventoryUC: inventoryUC,
		recorder:    recorder,
		now:         time.Now,
	}
}

// CreateSale valida las líneas, bloquea los productos involucrados y registra
// venta, líneas y salidas de kardex. Cualquier error deja el inventario intacto.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, actor entity.Actor, lines []LineInput) (*entity.Sale, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: la venta no tiene productos", domain.ErrMalformedSale)
	}
	ids := make([]string, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for i, l := range lines {
		if l.ProductID == "" {
			return nil, fmt.Errorf("%w: línea %d sin producto", domain.ErrMalformedSale, i+1)
		}
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: línea %d con cantidad %d", domain.ErrMalformedSale, i+1, l.Quantity)
		}
		if !seen[l.ProductID] {
			seen[l.ProductID] = true
			ids = append(ids, l.ProductID)
		}
	}
	// orden fijo de bloqueo para que dos ventas concurrentes no se crucen
	sort.Strings(ids)

	now := uc.now().Truncate(time.Microsecond)
	sale := &entity.Sale{
		ID:     uuid.New().String(),
		UserID: actor.UserID,
		Date:   now,
		Total:  decimal.Zero,
	}

	err := uc.txRunner.RunSale(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		products := make(map[string]*entity.Product, len(ids))
		for _, id := range ids {
			p, err := productRepo.GetForUpdate(ctx, id)
			if err != nil {
				return err
			}
			products[id] = p
		}

		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		total := decimal.Zero
		saleLines := make([]entity.SaleLine, 0, len(lines))
		for _, l := range lines {
			product := products[l.ProductID]
			if product == nil {
				return fmt.Errorf("%w: %s", domain.ErrProductNotFound, l.ProductID)
			}
			unitPrice, err := domsales.ToCOP(product.UnitPrice, product.Currency)
			if err != nil {
				return err
			}
			if _, err := uc.inventoryUC.RegisterOutInTx(
				ctx, movRepo, productRepo,
				product, l.Quantity,
				now,
				entity.ReasonSale, actor.UserID,
			); err != nil {
				return err
			}
			line := entity.SaleLine{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: product.ID,
				Quantity:  l.Quantity,
				UnitPrice: unitPrice,
			}
			if err := saleRepo.CreateLine(ctx, &line); err != nil {
				return err
			}
			saleLines = append(saleLines, line)
			total = total.Add(line.Subtotal())
		}

		if err := saleRepo.UpdateTotal(ctx, sale.ID, total); err != nil {
			return err
		}
		sale.Total = total
		sale.Lines = saleLines
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, actor, audit.ModuleSale, entity.AuditCreate,
		fmt.Sprintf("Venta %s por %s COP creada por %s", sale.ID, sale.Total.StringFixed(2), actor.Name()))
	return sale, nil
}

// CreateSaleFromRequest adapta el request HTTP.
func (uc *CreateSaleUseCase) CreateSaleFromRequest(ctx context.Context, actor entity.Actor, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	lines, err := LinesFromRequest(in)
	if err != nil {
		return nil, err
	}
	sale, err := uc.CreateSale(ctx, actor, lines)
	if err != nil {
		return nil, err
	}
	out := ToSaleResponse(sale)
	return &out, nil
}

// ToSaleResponse convierte una venta a su DTO; montos en COP.
func ToSaleResponse(s *entity.Sale) dto.SaleResponse {
	out := dto.SaleResponse{
		ID:       s.ID,
		UserID:   s.UserID,
		Date:     s.Date,
		Total:    s.Total,
		Currency: domsales.ReferenceCurrency,
	}
	for _, l := range s.Lines {
		out.Lines = append(out.Lines, dto.SaleLineResponse{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal(),
		})
	}
	return out
}
