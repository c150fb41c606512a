package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nova-inventario/internal/application/dto"
	"github.com/jhoicas/nova-inventario/internal/application/inventory"
	"github.com/jhoicas/nova-inventario/internal/application/report"
)

// KardexHandler consulta de movimientos y registro de entradas.
type KardexHandler struct {
	kardex   *inventory.KardexUseCase
	register *inventory.RegisterMovementUseCase
}

func NewKardexHandler(kardex *inventory.KardexUseCase, register *inventory.RegisterMovementUseCase) *KardexHandler {
	return &KardexHandler{kardex: kardex, register: register}
}

// Query godoc
// @Summary      Consultar kardex
// @Description  Movimientos en orden cronológico con stock anterior y actual.
// @Tags         kardex
// @Security     Bearer
// @Produce      json
// @Param        producto  query  string  false  "ID del producto"
// @Param        desde     query  string  false  "YYYY-MM-DD"
// @Param        hasta     query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/kardex [get]
func (h *KardexHandler) Query(c *fiber.Ctx) error {
	f, err := report.ParseFilter(queryGetter(c))
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.kardex.Query(c.UserContext(), f.ProductID, f.From, f.To)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RegisterEntry godoc
// @Summary      Registrar entrada de mercancía
// @Tags         kardex
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockEntryRequest  true  "Producto, cantidad y motivo"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/kardex/entradas [post]
func (h *KardexHandler) RegisterEntry(c *fiber.Ctx) error {
	var in dto.StockEntryRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.register.RegisterEntryFromRequest(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
