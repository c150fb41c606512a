// seed crea el rol Administrador (con todos los permisos) y el usuario
// administrador inicial. Es idempotente: si ya existen no hace nada.
//
// Uso: SEED_ADMIN_PASSWORD=... go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"os"

	"github.com/jhoicas/nova-inventario/internal/application/audit"
	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/application/usecase"
	"github.com/jhoicas/nova-inventario/internal/domain"
	"github.com/jhoicas/nova-inventario/internal/domain/access"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/infrastructure/postgres"
	"github.com/jhoicas/nova-inventario/pkg/config"
	"github.com/jhoicas/nova-inventario/pkg/logger"
)

const adminRoleName = "Administrador"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Component("seed")

	if cfg.Seed.AdminPassword == "" {
		log.Error().Msg("SEED_ADMIN_PASSWORD es obligatorio")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	recorder := audit.NewRecorder(postgres.NewAuditLogRepository(pool), log)
	system := entity.Actor{Username: "seed"}

	roleID, err := ensureAdminRole(ctx, usecase.NewRoleUseCase(roleRepo, recorder), system)
	if err != nil {
		log.Fatal().Err(err).Msg("rol administrador")
	}

	users := usecase.NewUserUseCase(userRepo, roleRepo, recorder)
	_, err = users.Create(ctx, system, dto.CreateUserRequest{
		Username: cfg.Seed.AdminUsername,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		RoleID:   roleID,
	})
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		log.Info().Str("username", cfg.Seed.AdminUsername).Msg("el usuario administrador ya existe")
	case err != nil:
		log.Fatal().Err(err).Msg("usuario administrador")
	default:
		log.Info().Str("username", cfg.Seed.AdminUsername).Msg("usuario administrador creado")
	}
}

// ensureAdminRole devuelve el ID del rol Administrador, creándolo si no existe.
func ensureAdminRole(ctx context.Context, roles *usecase.RoleUseCase, actor entity.Actor) (string, error) {
	list, err := roles.List(ctx)
	if err != nil {
		return "", err
	}
	for _, r := range list {
		if access.IsAdminRoleName(r.Name) {
			return r.ID, nil
		}
	}
	var perms []string
	for _, m := range access.Modules {
		for _, a := range access.Actions {
			perms = append(perms, access.Token(string(m), string(a)))
		}
	}
	out, err := roles.Create(ctx, actor, dto.RoleRequest{
		Name:        adminRoleName,
		Description: "Acceso total",
		Permissions: perms,
	})
	if err != nil {
		return "", err
	}
	return out.ID, nil
}
