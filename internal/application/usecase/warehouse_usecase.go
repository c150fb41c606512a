package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nova-inventario/internal/application/audit"
	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/domain"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para almacenes.
type WarehouseUseCase struct {
	repo     repository.WarehouseRepository
	recorder *audit.Recorder
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, recorder *audit.Recorder) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, recorder: recorder}
}

// Create crea un nuevo almacén.
func (uc *WarehouseUseCase) Create(ctx context.Context, actor entity.Actor, in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse := &entity.Warehouse{ID: uuid.New().String(), Active: true}
	if err := applyWarehouse(warehouse, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	uc.recorder.RecordChange(ctx, actor, audit.ModuleWarehouse, entity.AuditCreate, warehouse.Label())
	return ToWarehouseResponse(warehouse), nil
}

// GetByID obtiene un almacén por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToWarehouseResponse(warehouse), nil
}

// Update actualiza un almacén.
func (uc *WarehouseUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyWarehouse(warehouse, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, warehouse); err != nil {
		return nil, err
	}
	uc.recorder.RecordChange(ctx, actor, audit.ModuleWarehouse, entity.AuditUpdate, warehouse.Label())
	return ToWarehouseResponse(warehouse), nil
}

// List lista almacenes; onlyActive excluye los desactivados.
func (uc *WarehouseUseCase) List(ctx context.Context, onlyActive bool) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.List(ctx, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *ToWarehouseResponse(w))
	}
	return items, nil
}

// Delete desactiva el almacén.
func (uc *WarehouseUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	warehouse, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	uc.recorder.RecordChange(ctx, actor, audit.ModuleWarehouse, entity.AuditDelete, warehouse.Label())
	return nil
}

func (uc *WarehouseUseCase) get(ctx context.Context, id string) (*entity.Warehouse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return warehouse, nil
}

func applyWarehouse(w *entity.Warehouse, in dto.WarehouseRequest) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.NewValidationError("name", "es obligatorio")
	}
	if in.Capacity.LessThan(decimal.Zero) {
		return domain.NewValidationError("capacity", "no puede ser negativa")
	}
	w.Name = name
	w.Number = strings.TrimSpace(in.Number)
	w.Location = in.Location
	w.Capacity = in.Capacity
	w.ResponsibleID = in.ResponsibleID
	w.Active = boolOr(in.Active, w.Active)
	return nil
}

// ToWarehouseResponse entidad -> DTO de respuesta.
func ToWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:            w.ID,
		Name:          w.Name,
		Number:        w.Number,
		Label:         w.Label(),
		Location:      w.Location,
		Capacity:      w.Capacity,
		ResponsibleID: w.ResponsibleID,
		Active:        w.Active,
	}
}
