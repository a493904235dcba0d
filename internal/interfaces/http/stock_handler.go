package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ilogush/backoffice-api/internal/application/dto"
	"github.com/ilogush/backoffice-api/internal/application/stock"
)

// StockHandler maneja las peticiones HTTP de stock disponible.
type StockHandler struct {
	uc *stock.Usecase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.Usecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Available godoc
// @Summary      Stock disponible por (producto, talla, color)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StockLineResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) Available(c *fiber.Ctx) error {
	out, err := h.uc.AvailableStock(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
