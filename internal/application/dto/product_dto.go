package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Article string          `json:"article"`
	Name    string          `json:"name"`
	ColorID int64           `json:"color_id"`
	Price   decimal.Decimal `json:"price"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil no se tocan.
type UpdateProductRequest struct {
	Name    *string          `json:"name,omitempty"`
	ColorID *int64           `json:"color_id,omitempty"`
	Price   *decimal.Decimal `json:"price,omitempty"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Article   string          `json:"article"`
	Name      string          `json:"name"`
	ColorID   int64           `json:"color_id"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items  []ProductResponse `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// ColorResponse color de referencia.
type ColorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
