package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/nova-inventario/internal/application/audit"
	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/domain"
	"github.com/jhoicas/nova-inventario/internal/domain/access"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
)

// RoleUseCase casos de uso CRUD para roles. Los permisos se validan al escribir.
type RoleUseCase struct {
	repo     repository.RoleRepository
	recorder *audit.Recorder
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository, recorder *audit.Recorder) *RoleUseCase {
	return &RoleUseCase{repo: repo, recorder: recorder}
}

// Create crea un rol. Un token de permiso desconocido es un error de validación.
func (uc *RoleUseCase) Create(ctx context.Context, actor entity.Actor, in dto.RoleRequest) (*dto.RoleResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "es obligatorio")
	}
	perms, err := access.ValidatePermissions(in.Permissions)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	role := &entity.Role{
		ID:          uuid.New().String(),
		Name:        name,
		Description: in.Description,
		Permissions: perms,
		Active:      boolOr(in.Active, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, role); err != nil {
		return nil, err
	}
	uc.recorder.RecordChange(ctx, actor, audit.ModuleRole, entity.AuditCreate, role.Name)
	return ToRoleResponse(role), nil
}

// GetByID obtiene un rol por ID.
func (uc *RoleUseCase) GetByID(ctx context.Context, id string) (*dto.RoleResponse, error) {
	role, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToRoleResponse(role), nil
}

// List lista todos los roles, activos e inactivos.
func (uc *RoleUseCase) List(ctx context.Context) ([]dto.RoleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *ToRoleResponse(r))
	}
	return out, nil
}

// Update reemplaza nombre, descripción, permisos y estado.
func (uc *RoleUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.RoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "es obligatorio")
	}
	perms, err := access.ValidatePermissions(in.Permissions)
	if err != nil {
		return nil, err
	}
	role.Name = name
	role.Description = in.Description
	role.Permissions = perms
	role.Active = boolOr(in.Active, role.Active)
	role.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, role); err != nil {
		return nil, err
	}
	uc.recorder.RecordChange(ctx, actor, audit.ModuleRole, entity.AuditUpdate, role.Name)
	return ToRoleResponse(role), nil
}

// Delete desactiva el rol (borrado lógico).
func (uc *RoleUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	role, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	uc.recorder.RecordChange(ctx, actor, audit.ModuleRole, entity.AuditDelete, role.Name)
	return nil
}

// Matrix matriz de permisos: una fila por rol con cada par módulo × acción.
func (uc *RoleUseCase) Matrix(ctx context.Context) (*dto.RoleMatrixResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.RoleMatrixResponse{
		Modules: make([]string, 0, len(access.Modules)),
		Actions: make([]string, 0, len(access.Actions)),
		Rows:    make([]dto.RoleMatrixRow, 0, len(list)),
	}
	for _, m := range access.Modules {
		out.Modules = append(out.Modules, string(m))
	}
	for _, a := range access.Actions {
		out.Actions = append(out.Actions, string(a))
	}
	for _, r := range list {
		out.Rows = append(out.Rows, dto.RoleMatrixRow{
			RoleID:   r.ID,
			RoleName: r.Name,
			Grants:   access.Matrix(r),
		})
	}
	return out, nil
}

func (uc *RoleUseCase) get(ctx context.Context, id string) (*entity.Role, error) {
	role, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	return role, nil
}

// ToRoleResponse entidad -> DTO de respuesta.
func ToRoleResponse(r *entity.Role) *dto.RoleResponse {
	perms := access.SplitPermissions(r.Permissions)
	if perms == nil {
		perms = []string{}
	}
	return &dto.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Permissions: perms,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
