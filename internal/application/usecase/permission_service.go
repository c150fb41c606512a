package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/domain/access"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
)

// PermissionService resuelve permisos contra el estado vigente del usuario y su rol.
// No guarda nada entre llamadas: cada consulta lee usuario y rol de la BD.
type PermissionService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewPermissionService construye el servicio de permisos.
func NewPermissionService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *PermissionService {
	return &PermissionService{userRepo: userRepo, roleRepo: roleRepo}
}

// Resolve carga el usuario y su rol. Un usuario inexistente devuelve (nil, nil, nil).
func (s *PermissionService) Resolve(ctx context.Context, userID string) (*entity.User, *entity.Role, error) {
	if userID == "" {
		return nil, nil, nil
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("permisos: obtener usuario: %w", err)
	}
	if user == nil || user.RoleID == "" {
		return user, nil, nil
	}
	role, err := s.roleRepo.GetByID(ctx, user.RoleID)
	if err != nil {
		return nil, nil, fmt.Errorf("permisos: obtener rol: %w", err)
	}
	return user, role, nil
}

// Authorize informa si el usuario puede ejecutar action sobre module y devuelve
// el actor para los casos de uso. Devuelve error solo ante fallos de infraestructura.
func (s *PermissionService) Authorize(ctx context.Context, userID string, module access.Module, action access.Action) (entity.Actor, bool, error) {
	user, role, err := s.Resolve(ctx, userID)
	if err != nil {
		return entity.Actor{}, false, err
	}
	return entity.ActorFromUser(user), access.HasPermission(user, role, module, action), nil
}

// HasPermission igual que Authorize sin el actor.
func (s *PermissionService) HasPermission(ctx context.Context, userID string, module access.Module, action access.Action) (bool, error) {
	_, ok, err := s.Authorize(ctx, userID, module, action)
	return ok, err
}

// Dashboard módulos con permiso de lectura para el usuario.
func (s *PermissionService) Dashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	user, role, err := s.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &dto.DashboardResponse{Modules: []string{}}
	if user == nil {
		return out, nil
	}
	out.Username = user.Username
	if role != nil {
		out.Role = role.Name
	}
	for _, m := range access.VisibleModules(user, role) {
		out.Modules = append(out.Modules, string(m))
	}
	return out, nil
}
