package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderStatusNew        = "new"
	OrderStatusProcessing = "processing"
	OrderStatusDone       = "done"
	OrderStatusCancelled  = "cancelled"
)

// Order pedido de cliente registrado por el back-office.
type Order struct {
	ID           string
	CustomerName string
	Phone        string
	Address      string
	Status       string
	Total        decimal.Decimal
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderItem renglón de pedido con precio al momento de la venta.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID int64
	Size      string
	ColorID   int64
	Quantity  int64
	Price     decimal.Decimal
}
