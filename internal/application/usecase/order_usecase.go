package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ilogush/backoffice-api/internal/application/dto"
	"github.com/ilogush/backoffice-api/internal/domain"
	"github.com/ilogush/backoffice-api/internal/domain/entity"
	"github.com/ilogush/backoffice-api/internal/domain/repository"
)

// OrderTxRunner ejecuta fn dentro de una transacción con el repositorio de
// pedidos atado a esa tx.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}

// OrderUseCase casos de uso de pedidos.
type OrderUseCase struct {
	txRunner  OrderTxRunner
	orderRepo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner OrderTxRunner, orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo}
}

// Create registra un pedido con sus renglones en una transacción.
// El total es la suma de precio × cantidad de los renglones.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerName == "" || in.Phone == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	total := decimal.Zero
	for _, it := range in.Items {
		if it.Quantity <= 0 || it.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		total = total.Add(it.Price.Mul(decimal.NewFromInt(it.Quantity)))
	}

	now := time.Now()
	order := &entity.Order{
		ID:           uuid.New().String(),
		CustomerName: in.CustomerName,
		Phone:        in.Phone,
		Address:      in.Address,
		Status:       entity.OrderStatusNew,
		Total:        total,
		CreatedBy:    userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := uc.txRunner.RunOrder(ctx, func(orderRepo repository.OrderRepository) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, it := range in.Items {
			item := &entity.OrderItem{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: it.ProductID,
				Size:      it.Size,
				ColorID:   it.ColorID,
				Quantity:  it.Quantity,
				Price:     it.Price,
			}
			if err := orderRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := toOrderResponse(order)
	for _, it := range in.Items {
		out.Items = append(out.Items, dto.OrderItemResponse(it))
	}
	return out, nil
}

// GetByID devuelve el pedido con sus renglones, o nil si no existe.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	items, err := uc.orderRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(order)
	for _, it := range items {
		out.Items = append(out.Items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Size:      it.Size,
			ColorID:   it.ColorID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return out, nil
}

// List devuelve pedidos paginados, sin renglones.
func (uc *OrderUseCase) List(limit, offset int) (*dto.OrderListResponse, error) {
	orders, err := uc.orderRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{Items: make([]dto.OrderResponse, 0, len(orders)), Limit: limit, Offset: offset}
	for _, o := range orders {
		out.Items = append(out.Items, *toOrderResponse(o))
	}
	return out, nil
}

// UpdateStatus cambia el estado del pedido. Un pedido cancelado o cerrado no
// admite más transiciones.
func (uc *OrderUseCase) UpdateStatus(id, status string) (*dto.OrderResponse, error) {
	switch status {
	case entity.OrderStatusNew, entity.OrderStatusProcessing, entity.OrderStatusDone, entity.OrderStatusCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if order.Status == entity.OrderStatusDone || order.Status == entity.OrderStatusCancelled {
		return nil, domain.ErrConflict
	}
	if err := uc.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	return toOrderResponse(order), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Phone:        o.Phone,
		Address:      o.Address,
		Status:       o.Status,
		Total:        o.Total,
		CreatedBy:    o.CreatedBy,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
