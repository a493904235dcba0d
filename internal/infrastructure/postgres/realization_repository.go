package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ilogush/backoffice-api/internal/domain/entity"
	"github.com/ilogush/backoffice-api/internal/domain/repository"
)

var _ repository.RealizationRepository = (*RealizationRepo)(nil)

// RealizationRepo implementación de RealizationRepository sobre PostgreSQL.
// realization_items es append-only y referencia su documento con realization_id.
type RealizationRepo struct {
	q Querier
}

// NewRealizationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRealizationRepository(q Querier) *RealizationRepo {
	return &RealizationRepo{q: q}
}

// Create persiste el documento de realización.
func (r *RealizationRepo) Create(realization *entity.Realization) error {
	query := `
		INSERT INTO realizations (id, recipient, note, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		realization.ID, realization.Recipient, realization.Note, realization.CreatedBy, realization.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert realization: %w", err)
	}
	return nil
}

// CreateItem persiste un renglón de realización.
func (r *RealizationRepo) CreateItem(item *entity.RealizationItem) error {
	query := `
		INSERT INTO realization_items (id, realization_id, product_id, size, color_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.RealizationID, item.ProductID, item.Size, item.ColorID, item.Quantity, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert realization item: %w", err)
	}
	return nil
}

// GetByID obtiene una realización por ID, o nil si no existe.
func (r *RealizationRepo) GetByID(id string) (*entity.Realization, error) {
	query := `
		SELECT id, recipient, note, created_by, created_at
		FROM realizations WHERE id = $1`
	var rz entity.Realization
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rz.ID, &rz.Recipient, &rz.Note, &rz.CreatedBy, &rz.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get realization by id: %w", err)
	}
	return &rz, nil
}

// ListItems devuelve los renglones de una realización.
func (r *RealizationRepo) ListItems(realizationID string) ([]*entity.RealizationItem, error) {
	query := `
		SELECT id, realization_id, product_id, size, color_id, quantity, created_at
		FROM realization_items WHERE realization_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, realizationID)
	if err != nil {
		return nil, fmt.Errorf("list realization items: %w", err)
	}
	defer rows.Close()
	var list []*entity.RealizationItem
	for rows.Next() {
		var it entity.RealizationItem
		if err := rows.Scan(&it.ID, &it.RealizationID, &it.ProductID, &it.Size, &it.ColorID, &it.Quantity, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan realization item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// List devuelve realizaciones paginadas, las más recientes primero.
func (r *RealizationRepo) List(limit, offset int) ([]*entity.Realization, error) {
	query := `
		SELECT id, recipient, note, created_by, created_at
		FROM realizations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list realizations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Realization
	for rows.Next() {
		var rz entity.Realization
		if err := rows.Scan(&rz.ID, &rz.Recipient, &rz.Note, &rz.CreatedBy, &rz.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan realization: %w", err)
		}
		list = append(list, &rz)
	}
	return list, rows.Err()
}
