package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/domain/access"
	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/pkg/logger"
)

// PermissionChecker contrato mínimo del middleware. Lo implementa *usecase.PermissionService.
type PermissionChecker interface {
	Authorize(ctx context.Context, userID string, module access.Module, action access.Action) (entity.Actor, bool, error)
}

// RequirePermission verifica que el usuario del token tenga el permiso module_action.
// Debe usarse DESPUÉS de AuthMiddleware. El estado del usuario y del rol se lee en
// cada petición, así que un permiso revocado deja de valer de inmediato.
//
//   - 401 si no hay usuario autenticado.
//   - 403 si el usuario no existe, está inactivo o no tiene el permiso.
//   - 500 si falla la consulta.
func RequirePermission(checker PermissionChecker, module access.Module, action access.Action, log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
		}
		actor, ok, err := checker.Authorize(c.UserContext(), userID, module, action)
		if err != nil {
			log.Error().Err(err).Str("user_id", userID).Str("permission", access.Token(string(module), string(action))).Msg("verificación de permiso fallida")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo verificar el permiso"})
		}
		if actor.Known() {
			c.Locals(LocalActor, actor)
		}
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "se requiere el permiso " + access.Token(string(module), string(action)),
			})
		}
		return c.Next()
	}
}

// GetActor devuelve el actor resuelto por RequirePermission; si no pasó por él,
// el usuario del token.
func GetActor(c *fiber.Ctx) entity.Actor {
	if a, ok := c.Locals(LocalActor).(entity.Actor); ok {
		return a
	}
	return entity.Actor{UserID: GetUserID(c), Username: GetUsername(c)}
}
