package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/domain"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
)

// UseCase consultas sobre ventas ya registradas y descarga de factura.
type UseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	generator   InvoicePDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	generator InvoicePDFGenerator,
) *UseCase {
	return &UseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		generator:   generator,
	}
}

// GetByID devuelve la venta con sus líneas.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ToSaleResponse(sale)
	return &out, nil
}

// List ventas filtradas, más recientes primero.
func (uc *UseCase) List(ctx context.Context, f repository.SaleFilter) ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSaleResponse(s))
	}
	return out, nil
}

// Update no modifica nada: una venta registrada es inmutable. Devuelve la venta
// tal como está guardada.
func (uc *UseCase) Update(ctx context.Context, id string) (*dto.SaleResponse, error) {
	return uc.GetByID(ctx, id)
}

// Invoice genera el PDF de la factura de la venta.
// Retorna los bytes y el nombre de archivo sugerido.
func (uc *UseCase) Invoice(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.load(ctx, id)
	if err != nil {
		return nil, "", err
	}

	seller := entity.UnknownActorName
	if sale.UserID != "" {
		if u, uErr := uc.userRepo.GetByID(ctx, sale.UserID); uErr == nil && u != nil {
			seller = u.Username
		}
	}

	lines := make([]InvoiceLine, 0, len(sale.Lines))
	for _, l := range sale.Lines {
		name, sku := "Producto "+l.ProductID, ""
		if p, pErr := uc.productRepo.GetByID(ctx, l.ProductID); pErr == nil && p != nil {
			name, sku = p.Name, p.SKU
		}
		lines = append(lines, InvoiceLine{SaleLine: l, ProductName: name, ProductSKU: sku})
	}

	pdfBytes, err = uc.generator.GenerateSaleInvoicePDF(ctx, sale, seller, lines)
	if err != nil {
		return nil, "", fmt.Errorf("factura: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("factura_%s.pdf", sale.ID), nil
}

func (uc *UseCase) load(ctx context.Context, id string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("venta: obtener: %w", err)
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}
