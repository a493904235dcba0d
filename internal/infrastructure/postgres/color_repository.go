package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ilogush/backoffice-api/internal/domain/entity"
	"github.com/ilogush/backoffice-api/internal/domain/repository"
)

var _ repository.ColorRepository = (*ColorRepo)(nil)

// ColorRepo implementación de ColorRepository sobre PostgreSQL.
type ColorRepo struct {
	q Querier
}

// NewColorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewColorRepository(q Querier) *ColorRepo {
	return &ColorRepo{q: q}
}

// List devuelve toda la referencia de colores.
func (r *ColorRepo) List(ctx context.Context) ([]*entity.Color, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM colors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Color
	for rows.Next() {
		var c entity.Color
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan color: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByID obtiene un color por ID, o nil si no existe.
func (r *ColorRepo) GetByID(ctx context.Context, id int64) (*entity.Color, error) {
	var c entity.Color
	err := r.q.QueryRow(ctx, `SELECT id, name FROM colors WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get color by id: %w", err)
	}
	return &c, nil
}
