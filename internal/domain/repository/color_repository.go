package repository

import (
	"context"

	"github.com/ilogush/backoffice-api/internal/domain/entity"
)

// ColorRepository referencia de colores. List es un full scan; la tabla es pequeña.
type ColorRepository interface {
	List(ctx context.Context) ([]*entity.Color, error)
	GetByID(ctx context.Context, id int64) (*entity.Color, error)
}
