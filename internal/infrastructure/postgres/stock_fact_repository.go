package postgres

import (
	"context"
	"fmt"

	"github.com/ilogush/backoffice-api/internal/domain/repository"
	"github.com/ilogush/backoffice-api/internal/domain/stock"
)

var _ repository.StockFactRepository = (*StockFactRepo)(nil)

// StockFactRepo lectura de los hechos de inventario para la reconciliación.
// Usar con una tx de solo lectura (TxRunner.RunRead) para snapshot consistente.
type StockFactRepo struct {
	q Querier
}

// NewStockFactRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockFactRepository(q Querier) *StockFactRepo {
	return &StockFactRepo{q: q}
}

// ReceivedFacts devuelve todos los renglones de recepción con la proyección
// mínima del producto (nombre y artículo) unida para mostrar.
func (r *StockFactRepo) ReceivedFacts(ctx context.Context) ([]stock.ReceivedFact, error) {
	const query = `
		SELECT ri.product_id, ri.size, ri.color_id, ri.quantity, p.name, p.article
		FROM receipt_items ri
		JOIN products p ON p.id = ri.product_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stock.ReceivedFacts: %w", err)
	}
	defer rows.Close()
	var facts []stock.ReceivedFact
	for rows.Next() {
		var f stock.ReceivedFact
		if err := rows.Scan(&f.ProductID, &f.Size, &f.ColorID, &f.Quantity, &f.ProductName, &f.Article); err != nil {
			return nil, fmt.Errorf("stock.ReceivedFacts scan: %w", err)
		}
		facts = append(facts, f)
	}
	return facts, rows.Err()
}

// RealizedFacts devuelve todos los renglones de realización.
func (r *StockFactRepo) RealizedFacts(ctx context.Context) ([]stock.RealizedFact, error) {
	const query = `
		SELECT product_id, size, color_id, quantity
		FROM realization_items`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stock.RealizedFacts: %w", err)
	}
	defer rows.Close()
	var facts []stock.RealizedFact
	for rows.Next() {
		var f stock.RealizedFact
		if err := rows.Scan(&f.ProductID, &f.Size, &f.ColorID, &f.Quantity); err != nil {
			return nil, fmt.Errorf("stock.RealizedFacts scan: %w", err)
		}
		facts = append(facts, f)
	}
	return facts, rows.Err()
}
