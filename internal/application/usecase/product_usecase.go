package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nova-inventario/internal/application/audit"
	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/domain"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
	"github.com/jhoicas/nova-inventario/internal/domain/sales"
)

// ProductUseCase casos de uso CRUD para productos. El stock inicial se fija al
// crear; después solo cambia con ventas y entradas de kardex.
type ProductUseCase struct {
	repo     repository.ProductRepository
	recorder *audit.Recorder
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, recorder *audit.Recorder) *ProductUseCase {
	return &ProductUseCase{repo: repo, recorder: recorder}
}

// Create crea un nuevo producto. Moneda por defecto COP, unidad por defecto "unidad".
func (uc *ProductUseCase) Create(ctx context.Context, actor entity.Actor, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if in.Quantity < 0 {
		return nil, domain.NewValidationError("quantity", "no puede ser negativa")
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Quantity:  in.Quantity,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyProduct(product, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.recorder.RecordChange(ctx, actor, audit.ModuleProduct, entity.AuditCreate, product.Name)
	return ToProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Update actualiza datos de catálogo. Quantity del request se ignora.
func (uc *ProductUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyProduct(product, in); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.recorder.RecordChange(ctx, actor, audit.ModuleProduct, entity.AuditUpdate, product.Name)
	return ToProductResponse(product), nil
}

// List lista productos con los filtros del listado y del reporte.
func (uc *ProductUseCase) List(ctx context.Context, f repository.ProductFilter) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Delete desactiva el producto.
func (uc *ProductUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	product, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	uc.recorder.RecordChange(ctx, actor, audit.ModuleProduct, entity.AuditDelete, product.Name)
	return nil
}

func (uc *ProductUseCase) get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func applyProduct(p *entity.Product, in dto.ProductRequest) error {
	verr := &domain.ValidationError{Fields: map[string]string{}}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		verr.Fields["name"] = "es obligatorio"
	}
	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		verr.Fields["sku"] = "es obligatorio"
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		verr.Fields["unit_price"] = "no puede ser negativo"
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = entity.CurrencyCOP
	}
	if !sales.IsSupportedCurrency(currency) {
		verr.Fields["currency"] = "moneda no soportada"
	}
	unit := in.Unit
	if unit == "" {
		unit = entity.UnitUnidad
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	p.Name = name
	p.Description = in.Description
	p.SKU = sku
	p.UnitPrice = in.UnitPrice
	p.Currency = currency
	p.Unit = unit
	p.CategoryID = in.CategoryID
	p.SupplierID = in.SupplierID
	p.WarehouseID = in.WarehouseID
	p.Active = boolOr(in.Active, p.Active)
	return nil
}

// ToProductResponse entidad -> DTO de respuesta.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		UnitPrice:   p.UnitPrice,
		Currency:    p.Currency,
		Quantity:    p.Quantity,
		Unit:        p.Unit,
		CategoryID:  p.CategoryID,
		SupplierID:  p.SupplierID,
		WarehouseID: p.WarehouseID,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
