package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ilogush/backoffice-api/internal/application/dto"
	"github.com/ilogush/backoffice-api/internal/application/usecase"
)

// ColorHandler lectura de la referencia de colores.
type ColorHandler struct {
	uc *usecase.ColorUseCase
}

// NewColorHandler construye el handler.
func NewColorHandler(uc *usecase.ColorUseCase) *ColorHandler {
	return &ColorHandler{uc: uc}
}

// List godoc
// @Summary      Listar colores
// @Tags         colors
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ColorResponse
// @Router       /api/colors [get]
func (h *ColorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
