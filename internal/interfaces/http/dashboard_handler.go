package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nova-inventario/internal/application/usecase"
)

// DashboardHandler módulos visibles para el usuario autenticado.
type DashboardHandler struct {
	svc *usecase.PermissionService
}

func NewDashboardHandler(svc *usecase.PermissionService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Get godoc
// @Summary      Dashboard
// @Description  Módulos para los que el usuario tiene permiso de lectura.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.svc.Dashboard(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
