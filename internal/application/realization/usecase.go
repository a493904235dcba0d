// Package realization registra documentos de salida de mercancía (consignación,
// traslado o venta). Los renglones insertados son los hechos de salida de la
// reconciliación de stock.
//
// A propósito no se verifica stock disponible al registrar: los hechos son
// append-only y la sobre-realización se absorbe en lectura con piso en cero.
package realization

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ilogush/backoffice-api/internal/application/dto"
	"github.com/ilogush/backoffice-api/internal/application/receiving"
	"github.com/ilogush/backoffice-api/internal/domain"
	"github.com/ilogush/backoffice-api/internal/domain/entity"
	"github.com/ilogush/backoffice-api/internal/domain/repository"
)

// Usecase casos de uso de realización.
type Usecase struct {
	txRunner        TxRunner
	realizationRepo repository.RealizationRepository
	productRepo     repository.ProductRepository
}

// NewUsecase construye el caso de uso.
func NewUsecase(txRunner TxRunner, realizationRepo repository.RealizationRepository, productRepo repository.ProductRepository) *Usecase {
	return &Usecase{txRunner: txRunner, realizationRepo: realizationRepo, productRepo: productRepo}
}

// Create registra una realización con sus renglones en una sola transacción.
// Cada renglón lleva la FK realization_id de su documento.
func (uc *Usecase) Create(ctx context.Context, userID string, in dto.CreateRealizationRequest) (*dto.RealizationResponse, error) {
	if in.Recipient == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 || !receiving.ValidSize(it.Size) {
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
	realization := &entity.Realization{
		ID:        uuid.New().String(),
		Recipient: in.Recipient,
		Note:      in.Note,
		CreatedBy: userID,
		CreatedAt: now,
	}

	err := uc.txRunner.RunRealization(ctx, func(realizationRepo repository.RealizationRepository) error {
		if err := realizationRepo.Create(realization); err != nil {
			return err
		}
		for _, it := range in.Items {
			item := &entity.RealizationItem{
				ID:            uuid.New().String(),
				RealizationID: realization.ID,
				ProductID:     it.ProductID,
				Size:          it.Size,
				ColorID:       it.ColorID,
				Quantity:      it.Quantity,
				CreatedAt:     now,
			}
			if err := realizationRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := toRealizationResponse(realization)
	for _, it := range in.Items {
		out.Items = append(out.Items, dto.ReceiptItemResponse(it))
	}
	return out, nil
}

// GetByID devuelve la realización con sus renglones, o nil si no existe.
func (uc *Usecase) GetByID(id string) (*dto.RealizationResponse, error) {
	realization, err := uc.realizationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if realization == nil {
		return nil, nil
	}
	items, err := uc.realizationRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	out := toRealizationResponse(realization)
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

// List devuelve realizaciones paginadas, sin renglones.
func (uc *Usecase) List(limit, offset int) (*dto.RealizationListResponse, error) {
	realizations, err := uc.realizationRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.RealizationListResponse{Items: make([]dto.RealizationResponse, 0, len(realizations)), Limit: limit, Offset: offset}
	for _, r := range realizations {
		out.Items = append(out.Items, *toRealizationResponse(r))
	}
	return out, nil
}

func toRealizationResponse(r *entity.Realization) *dto.RealizationResponse {
	return &dto.RealizationResponse{
		ID:        r.ID,
		Recipient: r.Recipient,
		Note:      r.Note,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
	}
}
