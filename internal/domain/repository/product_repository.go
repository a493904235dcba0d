package repository

import "github.com/ilogush/backoffice-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) (int64, error)
	GetByID(id int64) (*entity.Product, error)
	GetByArticle(article string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
}
