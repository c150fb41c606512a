package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nova-inventario/internal/application/audit"
)

// AuditHandler consulta del log de auditoría.
type AuditHandler struct {
	uc *audit.UseCase
}

func NewAuditHandler(uc *audit.UseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Log de auditoría
// @Description  Todas las entradas, más recientes primero. Sin paginación.
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AuditLogResponse
// @Router       /api/audit-logs [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
