package usecase

import (
	"time"

	"github.com/ilogush/backoffice-api/internal/application/dto"
	"github.com/ilogush/backoffice-api/internal/domain"
	"github.com/ilogush/backoffice-api/internal/domain/entity"
	"github.com/ilogush/backoffice-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. El artículo debe ser único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Article == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByArticle(in.Article)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		Article:   in.Article,
		Name:      in.Name,
		ColorID:   in.ColorID,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := uc.repo.Create(product)
	if err != nil {
		return nil, err
	}
	product.ID = id
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID, o nil si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza nombre, color y/o precio. El artículo es inmutable.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.ColorID != nil {
		product.ColorID = *in.ColorID
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve productos paginados.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{Items: make([]dto.ProductResponse, 0, len(products)), Limit: limit, Offset: offset}
	for _, p := range products {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Article:   p.Article,
		Name:      p.Name,
		ColorID:   p.ColorID,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
