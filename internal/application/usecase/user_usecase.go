package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/nova-inventario/internal/application/audit"
	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/domain"
	"github.com/jhoicas/nova-inventario/internal/domain/access"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
// Superusuario y staff se recalculan desde el rol en cada guardado.
type UserUseCase struct {
	repo     repository.UserRepository
	roleRepo repository.RoleRepository
	recorder *audit.Recorder
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(repo repository.UserRepository, roleRepo repository.RoleRepository, recorder *audit.Recorder) *UserUseCase {
	return &UserUseCase{repo: repo, roleRepo: roleRepo, recorder: recorder}
}

// Create crea un usuario: hashea password con bcrypt y persiste.
func (uc *UserUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, domain.NewValidationError("username", "es obligatorio")
	}
	role, err := uc.role(ctx, in.RoleID)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		RoleID:       in.RoleID,
		Active:       boolOr(in.Active, true),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	access.ApplyAdminFlags(user, role)
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.recorder.RecordChange(ctx, actor, audit.ModuleUser, entity.AuditCreate, user.Username)
	return ToUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// List lista todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *ToUserResponse(u))
	}
	return out, nil
}

// Update actualización parcial. Password vacío o ausente no cambia la contraseña.
// RoleID vacío quita el rol; en ese caso las banderas se conservan.
func (uc *UserUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Username != nil {
		u := strings.TrimSpace(*in.Username)
		if u == "" {
			return nil, domain.NewValidationError("username", "es obligatorio")
		}
		user.Username = u
	}
	if in.Email != nil {
		user.Email = strings.TrimSpace(*in.Email)
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.RoleID != nil {
		user.RoleID = strings.TrimSpace(*in.RoleID)
	}
	role, err := uc.role(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}
	access.ApplyAdminFlags(user, role)
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	uc.recorder.RecordChange(ctx, actor, audit.ModuleUser, entity.AuditUpdate, user.Username)
	return ToUserResponse(user), nil
}

// Delete elimina el usuario. Sus ventas quedan sin usuario asociado.
func (uc *UserUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	user, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if actor.UserID == id {
		// La fila del actor ya no existe; se conserva solo su nombre en el detalle.
		actor = entity.Actor{Username: actor.Username}
	}
	uc.recorder.RecordChange(ctx, actor, audit.ModuleUser, entity.AuditDelete, user.Username)
	return nil
}

func (uc *UserUseCase) get(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// role carga el rol referenciado; id vacío significa sin rol.
func (uc *UserUseCase) role(ctx context.Context, id string) (*entity.Role, error) {
	if id == "" {
		return nil, nil
	}
	role, err := uc.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.NewValidationError("role_id", "el rol no existe")
	}
	return role, nil
}

// ToUserResponse entidad -> DTO de respuesta.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		FullName:    u.FullName(),
		RoleID:      u.RoleID,
		Active:      u.Active,
		IsSuperuser: u.IsSuperuser,
		IsStaff:     u.IsStaff,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
