package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product artículo del catálogo (ropa). El color base es referencia a la tabla colors;
// las variantes por talla/color viven en los hechos de recepción, no aquí.
type Product struct {
	ID        int64
	Article   string // código de artículo visible (ej. "2310-05")
	Name      string
	ColorID   int64
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
