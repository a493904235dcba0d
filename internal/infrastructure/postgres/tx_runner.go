package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ilogush/backoffice-api/internal/application/realization"
	"github.com/ilogush/backoffice-api/internal/application/receiving"
	appstock "github.com/ilogush/backoffice-api/internal/application/stock"
	"github.com/ilogush/backoffice-api/internal/application/usecase"
	"github.com/ilogush/backoffice-api/internal/domain/repository"
)

// Verificación de que TxRunner implementa los puertos de la capa de aplicación.
var (
	_ receiving.TxRunner    = (*TxRunner)(nil)
	_ realization.TxRunner  = (*TxRunner)(nil)
	_ usecase.OrderTxRunner = (*TxRunner)(nil)
	_ appstock.ReadTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunReceiving inicia una transacción, ejecuta fn con el repo de recepciones
// atado a la tx y hace Commit o Rollback.
func (r *TxRunner) RunReceiving(ctx context.Context, fn func(receiptRepo repository.ReceiptRepository) error) error {
	return r.run(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return fn(NewReceiptRepository(tx))
	})
}

// RunRealization inicia una transacción con el repo de realizaciones atado a la tx.
func (r *TxRunner) RunRealization(ctx context.Context, fn func(realizationRepo repository.RealizationRepository) error) error {
	return r.run(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return fn(NewRealizationRepository(tx))
	})
}

// RunOrder inicia una transacción con el repo de pedidos atado a la tx.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error {
	return r.run(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return fn(NewOrderRepository(tx))
	})
}

// RunRead inicia una transacción de solo lectura con snapshot consistente
// (REPEATABLE READ) para la reconciliación de stock: los dos scans de hechos y
// la referencia de colores ven el mismo estado de la base.
func (r *TxRunner) RunRead(ctx context.Context, fn func(
	colorRepo repository.ColorRepository,
	factRepo repository.StockFactRepository,
) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	return r.run(ctx, opts, func(tx pgx.Tx) error {
		return fn(NewColorRepository(tx), NewStockFactRepository(tx))
	})
}

func (r *TxRunner) run(ctx context.Context, opts pgx.TxOptions, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
