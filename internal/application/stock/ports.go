package stock

import (
	"context"

	"github.com/ilogush/backoffice-api/internal/domain/repository"
)

// ReadTxRunner ejecuta fn dentro de una transacción de solo lectura con snapshot
// consistente (REPEATABLE READ), pasando repositorios atados a esa transacción.
// Garantiza que la lectura de colores, entradas y salidas vea un único estado de
// la base: sin esto, una escritura concurrente entre los dos scans puede producir
// una cifra de stock que nunca existió.
type ReadTxRunner interface {
	RunRead(ctx context.Context, fn func(
		colorRepo repository.ColorRepository,
		factRepo repository.StockFactRepository,
	) error) error
}
