package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nova-inventario/internal/application/audit"
)

// AuditMiddleware registra cada petición a /api al terminar, con el status final.
// Va antes de AuthMiddleware: las peticiones rechazadas también quedan en el log,
// con actor desconocido si no hubo token válido.
func AuditMiddleware(recorder *audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		class, ok := audit.ClassifyRequest(audit.RequestInfo{
			Method: c.Method(),
			Path:   c.Path(),
			Export: c.Query("exportar") == "1",
			Status: status,
		})
		if ok {
			recorder.Record(c.UserContext(), GetActor(c), class.Module, class.Action, class.Detail)
		}
		return err
	}
}
