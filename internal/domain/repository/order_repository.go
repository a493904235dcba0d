package repository

import "github.com/ilogush/backoffice-api/internal/domain/entity"

// OrderRepository puerto de persistencia para pedidos.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	ListItems(orderID string) ([]*entity.OrderItem, error)
	List(limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id, status string) error
}
