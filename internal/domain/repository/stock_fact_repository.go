package repository

import (
	"context"

	"github.com/ilogush/backoffice-api/internal/domain/stock"
)

// StockFactRepository lectura de los hechos de inventario para la reconciliación.
// Ambas proyecciones son full scan sin orden garantizado; las entradas llegan
// con la proyección mínima del producto (nombre y artículo) ya unida.
type StockFactRepository interface {
	ReceivedFacts(ctx context.Context) ([]stock.ReceivedFact, error)
	RealizedFacts(ctx context.Context) ([]stock.RealizedFact, error)
}
