// Package reports exporta vistas de reporte construidas sobre la
// reconciliación de stock.
package reports

import (
	"context"
	"time"

	"github.com/ilogush/backoffice-api/internal/application/dto"
)

// StockProvider obtiene el stock disponible (implementado por stock.Usecase).
type StockProvider interface {
	AvailableStock(ctx context.Context) ([]dto.StockLineResponse, error)
}

// StockPDFGenerator renderiza el reporte de stock a PDF.
type StockPDFGenerator interface {
	GenerateStockPDF(ctx context.Context, lines []dto.StockLineResponse, generatedAt time.Time) ([]byte, error)
}

// Usecase casos de uso de reportes.
type Usecase struct {
	stock StockProvider
	pdf   StockPDFGenerator
}

// NewUsecase construye el caso de uso.
func NewUsecase(stock StockProvider, pdf StockPDFGenerator) *Usecase {
	return &Usecase{stock: stock, pdf: pdf}
}

// StockPDF calcula el stock disponible y lo devuelve renderizado como PDF.
func (uc *Usecase) StockPDF(ctx context.Context) ([]byte, error) {
	lines, err := uc.stock.AvailableStock(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateStockPDF(ctx, lines, time.Now())
}
