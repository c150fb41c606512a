package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/nova-inventario/internal/application/audit"
	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/domain"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo     repository.SupplierRepository
	recorder *audit.Recorder
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, recorder *audit.Recorder) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, recorder: recorder}
}

func (uc *SupplierUseCase) Create(ctx context.Context, actor entity.Actor, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &entity.Supplier{ID: uuid.New().String(), Active: true}
	if err := applySupplier(supplier, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	uc.recorder.RecordChange(ctx, actor, audit.ModuleSupplier, entity.AuditCreate, supplier.Name)
	return ToSupplierResponse(supplier), nil
}

func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToSupplierResponse(supplier), nil
}

func (uc *SupplierUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applySupplier(supplier, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	uc.recorder.RecordChange(ctx, actor, audit.ModuleSupplier, entity.AuditUpdate, supplier.Name)
	return ToSupplierResponse(supplier), nil
}

func (uc *SupplierUseCase) List(ctx context.Context, onlyActive bool) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List(ctx, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *ToSupplierResponse(c))
	}
	return items, nil
}

// Delete desactiva el proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	supplier, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	uc.recorder.RecordChange(ctx, actor, audit.ModuleSupplier, entity.AuditDelete, supplier.Name)
	return nil
}

func (uc *SupplierUseCase) get(ctx context.Context, id string) (*entity.Supplier, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return supplier, nil
}

func applySupplier(s *entity.Supplier, in dto.SupplierRequest) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.NewValidationError("name", "es obligatorio")
	}
	s.Name = name
	s.Contact = in.Contact
	s.Phone = in.Phone
	s.Email = strings.TrimSpace(in.Email)
	s.Address = in.Address
	s.NIT = strings.TrimSpace(in.NIT)
	s.Active = boolOr(in.Active, s.Active)
	return nil
}

// ToSupplierResponse entidad -> DTO de respuesta.
func ToSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:      s.ID,
		Name:    s.Name,
		Contact: s.Contact,
		Phone:   s.Phone,
		Email:   s.Email,
		Address: s.Address,
		NIT:     s.NIT,
		Active:  s.Active,
	}
}
