// Package stock orquesta la reconciliación de inventario: lee los hechos y la
// referencia de colores en un snapshot consistente y delega la agregación al
// dominio.
package stock

import (
	"context"
	"strconv"

	"github.com/ilogush/backoffice-api/internal/application/dto"
	"github.com/ilogush/backoffice-api/internal/domain/repository"
	stockdomain "github.com/ilogush/backoffice-api/internal/domain/stock"
)

// Usecase calcula el stock disponible por (producto, talla, color).
type Usecase struct {
	tx ReadTxRunner
}

// NewUsecase construye el caso de uso.
func NewUsecase(tx ReadTxRunner) *Usecase {
	return &Usecase{tx: tx}
}

// AvailableStock devuelve el stock disponible por Key, enriquecido con nombres
// de producto y color, ordenado y con solo cantidades positivas.
//
// Un fallo de lectura en cualquiera de las tres consultas aborta el cálculo
// completo: nunca se devuelven resultados parciales y no se reintenta. Un color
// ausente en la referencia no es un error; se muestra el id como texto.
func (uc *Usecase) AvailableStock(ctx context.Context) ([]dto.StockLineResponse, error) {
	var (
		colorNames map[int64]string
		lines      []stockdomain.Line
	)
	err := uc.tx.RunRead(ctx, func(
		colorRepo repository.ColorRepository,
		factRepo repository.StockFactRepository,
	) error {
		colors, err := colorRepo.List(ctx)
		if err != nil {
			return err
		}
		colorNames = make(map[int64]string, len(colors))
		for _, c := range colors {
			colorNames[c.ID] = c.Name
		}

		received, err := factRepo.ReceivedFacts(ctx)
		if err != nil {
			return err
		}
		realized, err := factRepo.RealizedFacts(ctx)
		if err != nil {
			return err
		}
		lines = stockdomain.Aggregate(received, realized)
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.StockLineResponse, 0, len(lines))
	for _, l := range lines {
		name, ok := colorNames[l.ColorID]
		if !ok {
			name = strconv.FormatInt(l.ColorID, 10)
		}
		out = append(out, dto.StockLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Article:     l.Article,
			Size:        l.Size,
			ColorID:     l.ColorID,
			ColorName:   name,
			Qty:         l.Quantity,
		})
	}
	return out, nil
}
