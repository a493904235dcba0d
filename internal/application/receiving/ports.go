package receiving

import (
	"context"

	"github.com/ilogush/backoffice-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de BD con el repositorio de
// recepciones atado a esa tx. Documento y renglones se insertan atómicamente.
type TxRunner interface {
	RunReceiving(ctx context.Context, fn func(receiptRepo repository.ReceiptRepository) error) error
}
