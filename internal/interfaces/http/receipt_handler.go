package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ilogush/backoffice-api/internal/application/dto"
	"github.com/ilogush/backoffice-api/internal/application/receiving"
	"github.com/ilogush/backoffice-api/internal/domain"
)

// ReceiptHandler maneja las peticiones HTTP de recepciones (protegido).
type ReceiptHandler struct {
	uc *receiving.Usecase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *receiving.Usecase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar recepción de mercancía
// @Tags         receipts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceiptRequest  true  "Recepción con renglones"
// @Success      201   {object}  dto.ReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/receipts [post]
func (h *ReceiptHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceiptRequest
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
// @Summary      Obtener recepción con renglones
// @Tags         receipts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la recepción"
// @Success      200  {object}  dto.ReceiptResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id} [get]
func (h *ReceiptHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recepción no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar recepciones
// @Tags         receipts
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ReceiptListResponse
// @Router       /api/receipts [get]
func (h *ReceiptHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
