package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ilogush/backoffice-api/internal/application/dto"
	"github.com/ilogush/backoffice-api/internal/application/realization"
	"github.com/ilogush/backoffice-api/internal/domain"
)

// RealizationHandler maneja las peticiones HTTP de salidas de mercancía.
type RealizationHandler struct {
	uc *realization.Usecase
}

// NewRealizationHandler construye el handler.
func NewRealizationHandler(uc *realization.Usecase) *RealizationHandler {
	return &RealizationHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar salida de mercancía
// @Tags         realizations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRealizationRequest  true  "Salida con renglones"
// @Success      201   {object}  dto.RealizationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/realizations [post]
func (h *RealizationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRealizationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "renglones inválidos: producto, talla y cantidad positiva requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener salida con renglones
// @Tags         realizations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la salida"
// @Success      200  {object}  dto.RealizationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/realizations/{id} [get]
func (h *RealizationHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "salida no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar salidas de mercancía
// @Tags         realizations
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.RealizationListResponse
// @Router       /api/realizations [get]
func (h *RealizationHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
