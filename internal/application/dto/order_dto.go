package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput renglón para crear un pedido.
type OrderItemInput struct {
	ProductID int64           `json:"product_id"`
	Size      string          `json:"size"`
	ColorID   int64           `json:"color_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	CustomerName string           `json:"customer_name"`
	Phone        string           `json:"phone"`
	Address      string           `json:"address,omitempty"`
	Items        []OrderItemInput `json:"items"`
}

// UpdateOrderStatusRequest body para PATCH /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse renglón de pedido.
type OrderItemResponse struct {
	ProductID int64           `json:"product_id"`
	Size      string          `json:"size"`
	ColorID   int64           `json:"color_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderResponse pedido en respuestas.
type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerName string              `json:"customer_name"`
	Phone        string              `json:"phone"`
	Address      string              `json:"address,omitempty"`
	Status       string              `json:"status"`
	Total        decimal.Decimal     `json:"total"`
	CreatedBy    string              `json:"created_by"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	Items        []OrderItemResponse `json:"items,omitempty"`
}

// OrderListResponse listado paginado de pedidos.
type OrderListResponse struct {
	Items  []OrderResponse `json:"items"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}
