package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ilogush/backoffice-api/internal/domain/entity"
	"github.com/ilogush/backoffice-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación de ReceiptRepository sobre PostgreSQL.
// receipt_items es append-only: solo INSERT y SELECT.
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create persiste el documento de recepción.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	query := `
		INSERT INTO receipts (id, note, created_by, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.Note, receipt.CreatedBy, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// CreateItem persiste un renglón de recepción.
func (r *ReceiptRepo) CreateItem(item *entity.ReceiptItem) error {
	query := `
		INSERT INTO receipt_items (id, receipt_id, product_id, size, color_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ReceiptID, item.ProductID, item.Size, item.ColorID, item.Quantity, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receipt item: %w", err)
	}
	return nil
}

// GetByID obtiene una recepción por ID, o nil si no existe.
func (r *ReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	query := `
		SELECT id, note, created_by, created_at
		FROM receipts WHERE id = $1`
	var rec entity.Receipt
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.Note, &rec.CreatedBy, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt by id: %w", err)
	}
	return &rec, nil
}

// ListItems devuelve los renglones de una recepción.
func (r *ReceiptRepo) ListItems(receiptID string) ([]*entity.ReceiptItem, error) {
	query := `
		SELECT id, receipt_id, product_id, size, color_id, quantity, created_at
		FROM receipt_items WHERE receipt_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("list receipt items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReceiptItem
	for rows.Next() {
		var it entity.ReceiptItem
		if err := rows.Scan(&it.ID, &it.ReceiptID, &it.ProductID, &it.Size, &it.ColorID, &it.Quantity, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan receipt item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// List devuelve recepciones paginadas, las más recientes primero.
func (r *ReceiptRepo) List(limit, offset int) ([]*entity.Receipt, error) {
	query := `
		SELECT id, note, created_by, created_at
		FROM receipts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		var rec entity.Receipt
		if err := rows.Scan(&rec.ID, &rec.Note, &rec.CreatedBy, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
