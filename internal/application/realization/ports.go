package realization

import (
	"context"

	"github.com/ilogush/backoffice-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de BD con el repositorio de
// realizaciones atado a esa tx.
type TxRunner interface {
	RunRealization(ctx context.Context, fn func(realizationRepo repository.RealizationRepository) error) error
}
