package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ilogush/backoffice-api/internal/domain"
	"github.com/ilogush/backoffice-api/internal/domain/entity"
	"github.com/ilogush/backoffice-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto y devuelve el id asignado por la secuencia.
func (r *ProductRepo) Create(product *entity.Product) (int64, error) {
	query := `
		INSERT INTO products (article, name, color_id, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		product.Article, product.Name, product.ColorID, product.Price,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

// GetByID obtiene un producto por ID, o nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT id, article, name, color_id, price, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Article, &p.Name, &p.ColorID, &p.Price, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return &p, nil
}

// GetByArticle obtiene un producto por código de artículo, o nil si no existe.
func (r *ProductRepo) GetByArticle(article string) (*entity.Product, error) {
	query := `
		SELECT id, article, name, color_id, price, created_at, updated_at
		FROM products WHERE article = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, article).Scan(
		&p.ID, &p.Article, &p.Name, &p.ColorID, &p.Price, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by article: %w", err)
	}
	return &p, nil
}

// List devuelve productos paginados, los más recientes primero.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, article, name, color_id, price, created_at, updated_at
		FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Article, &p.Name, &p.ColorID, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza nombre, color y precio de un producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, color_id = $3, price = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.ColorID, product.Price, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}
