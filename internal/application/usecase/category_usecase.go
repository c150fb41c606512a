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

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	recorder *audit.Recorder
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, recorder *audit.Recorder) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, recorder: recorder}
}

func (uc *CategoryUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category := &entity.Category{ID: uuid.New().String(), Active: true}
	if err := applyCategory(category, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	uc.recorder.RecordChange(ctx, actor, audit.ModuleCategory, entity.AuditCreate, category.Name)
	return ToCategoryResponse(category), nil
}

func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

func (uc *CategoryUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyCategory(category, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	uc.recorder.RecordChange(ctx, actor, audit.ModuleCategory, entity.AuditUpdate, category.Name)
	return ToCategoryResponse(category), nil
}

func (uc *CategoryUseCase) List(ctx context.Context, onlyActive bool) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *ToCategoryResponse(c))
	}
	return items, nil
}

// Delete desactiva la categoría; los productos conservan la referencia.
func (uc *CategoryUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	category, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	uc.recorder.RecordChange(ctx, actor, audit.ModuleCategory, entity.AuditDelete, category.Name)
	return nil
}

func (uc *CategoryUseCase) get(ctx context.Context, id string) (*entity.Category, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

func applyCategory(c *entity.Category, in dto.CategoryRequest) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.NewValidationError("name", "es obligatorio")
	}
	c.Name = name
	c.Description = in.Description
	c.Icon = in.Icon
	c.Active = boolOr(in.Active, c.Active)
	return nil
}

// ToCategoryResponse entidad -> DTO de respuesta.
func ToCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Active:      c.Active,
	}
}
