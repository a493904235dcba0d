package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ilogush/backoffice-api/internal/application/dto"
	"github.com/ilogush/backoffice-api/internal/application/reports"
)

// ReportHandler genera reportes descargables.
type ReportHandler struct {
	uc *reports.Usecase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *reports.Usecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockPDF godoc
// @Summary      Reporte de existencias en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.StockPDF(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("existencias_%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdf)
}
