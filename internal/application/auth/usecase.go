package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/domain"
	"github.com/jhoicas/nova-inventario/internal/domain/access"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
	"github.com/jhoicas/nova-inventario/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, roleRepo: roleRepo, jwtCfg: jwtCfg}
}

// Login acepta username o email (sin distinguir mayúsculas). Si la credencial
// coincide con más de un usuario se rechaza con ErrAmbiguousLogin.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	login := strings.TrimSpace(in.Login)
	if login == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	matches, err := uc.userRepo.FindByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	switch {
	case len(matches) == 0:
		return nil, domain.ErrUserNotFound
	case len(matches) > 1:
		return nil, domain.ErrAmbiguousLogin
	}
	user := matches[0]

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrInactiveUser
	}
	var role *entity.Role
	if user.RoleID != "" {
		role, err = uc.roleRepo.GetByID(ctx, user.RoleID)
		if err != nil {
			return nil, err
		}
		if role != nil && !role.Active {
			return nil, domain.ErrInactiveRole
		}
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	modules := access.VisibleModules(user, role)
	names := make([]string, 0, len(modules))
	for _, m := range modules {
		names = append(names, string(m))
	}
	return &dto.LoginResponse{
		Token:   token,
		User:    *toUserResponse(user),
		Modules: names,
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
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
