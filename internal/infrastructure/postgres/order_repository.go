package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ilogush/backoffice-api/internal/domain/entity"
	"github.com/ilogush/backoffice-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste el pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_name, phone, address, status, total, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerName, order.Phone, order.Address, order.Status,
		order.Total, order.CreatedBy, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste un renglón de pedido.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, size, color_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.Size, item.ColorID, item.Quantity, item.Price,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID, o nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, customer_name, phone, address, status, total, created_by, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerName, &o.Phone, &o.Address, &o.Status, &o.Total,
		&o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return &o, nil
}

// ListItems devuelve los renglones de un pedido.
func (r *OrderRepo) ListItems(orderID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, size, color_id, quantity, price
		FROM order_items WHERE order_id = $1`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Size, &it.ColorID, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// List devuelve pedidos paginados, los más recientes primero.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, customer_name, phone, address, status, total, created_by, created_at, updated_at
		FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.Phone, &o.Address, &o.Status, &o.Total, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado del pedido.
func (r *OrderRepo) UpdateStatus(id, status string) error {
	query := `UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}
