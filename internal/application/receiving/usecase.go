// Package receiving registra documentos de recepción de mercancía. Los renglones
// insertados son los hechos de entrada que alimentan la reconciliación de stock.
package receiving

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ilogush/backoffice-api/internal/application/dto"
	"github.com/ilogush/backoffice-api/internal/domain"
	"github.com/ilogush/backoffice-api/internal/domain/entity"
	"github.com/ilogush/backoffice-api/internal/domain/repository"
)

// Tallas admitidas en renglones de recepción y realización.
var validSizes = map[string]bool{
	"XS": true, "S": true, "M": true, "L": true,
	"XL": true, "2XL": true, "3XL": true,
}

// ValidSize indica si la talla es una de las admitidas.
func ValidSize(s string) bool { return validSizes[s] }

// Usecase casos de uso de recepción.
type Usecase struct {
	txRunner    TxRunner
	receiptRepo repository.ReceiptRepository
	productRepo repository.ProductRepository
}

// NewUsecase construye el caso de uso. receiptRepo se usa para lecturas fuera
// de transacción; las escrituras pasan por txRunner.
func NewUsecase(txRunner TxRunner, receiptRepo repository.ReceiptRepository, productRepo repository.ProductRepository) *Usecase {
	return &Usecase{txRunner: txRunner, receiptRepo: receiptRepo, productRepo: productRepo}
}

// Create registra una recepción con sus renglones en una sola transacción.
// Valida renglones (producto existente, talla admitida, cantidad positiva) antes
// de abrir la transacción.
func (uc *Usecase) Create(ctx context.Context, userID string, in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 || !ValidSize(it.Size) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	receipt := &entity.Receipt{
		ID:        uuid.New().String(),
		Note:      in.Note,
		CreatedBy: userID,
		CreatedAt: now,
	}

	err := uc.txRunner.RunReceiving(ctx, func(receiptRepo repository.ReceiptRepository) error {
		if err := receiptRepo.Create(receipt); err != nil {
			return err
		}
		for _, it := range in.Items {
			item := &entity.ReceiptItem{
				ID:        uuid.New().String(),
				ReceiptID: receipt.ID,
				ProductID: it.ProductID,
				Size:      it.Size,
				ColorID:   it.ColorID,
				Quantity:  it.Quantity,
				CreatedAt: now,
			}
			if err := receiptRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := toReceiptResponse(receipt)
	for _, it := range in.Items {
		out.Items = append(out.Items, dto.ReceiptItemResponse(it))
	}
	return out, nil
}

// GetByID devuelve la recepción con sus renglones, o nil si no existe.
func (uc *Usecase) GetByID(id string) (*dto.ReceiptResponse, error) {
	receipt, err := uc.receiptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, nil
	}
	items, err := uc.receiptRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	out := toReceiptResponse(receipt)
	for _, it := range items {
		out.Items = append(out.Items, dto.ReceiptItemResponse{
			ProductID: it.ProductID,
			Size:      it.Size,
			ColorID:   it.ColorID,
			Quantity:  it.Quantity,
		})
	}
	return out, nil
}

// List devuelve recepciones paginadas, sin renglones.
func (uc *Usecase) List(limit, offset int) (*dto.ReceiptListResponse, error) {
	receipts, err := uc.receiptRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ReceiptListResponse{Items: make([]dto.ReceiptResponse, 0, len(receipts)), Limit: limit, Offset: offset}
	for _, r := range receipts {
		out.Items = append(out.Items, *toReceiptResponse(r))
	}
	return out, nil
}

func toReceiptResponse(r *entity.Receipt) *dto.ReceiptResponse {
	return &dto.ReceiptResponse{
		ID:        r.ID,
		Note:      r.Note,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
	}
}
