package stock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/ilogush/backoffice-api/internal/application/stock"
	"github.com/ilogush/backoffice-api/internal/domain/entity"
	"github.com/ilogush/backoffice-api/internal/domain/repository"
	stockdomain "github.com/ilogush/backoffice-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: runner en memoria con repos fijos
// ──────────────────────────────────────────────────────────────────────────────

type fakeColorRepo struct {
	colors []*entity.Color
	err    error
}

func (r *fakeColorRepo) List(context.Context) ([]*entity.Color, error) { return r.colors, r.err }
func (r *fakeColorRepo) GetByID(_ context.Context, id int64) (*entity.Color, error) {
	for _, c := range r.colors {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

type fakeFactRepo struct {
	received    []stockdomain.ReceivedFact
	realized    []stockdomain.RealizedFact
	receivedErr error
	realizedErr error
}

func (r *fakeFactRepo) ReceivedFacts(context.Context) ([]stockdomain.ReceivedFact, error) {
	return r.received, r.receivedErr
}

func (r *fakeFactRepo) RealizedFacts(context.Context) ([]stockdomain.RealizedFact, error) {
	return r.realized, r.realizedErr
}

// fakeRunner ejecuta fn directamente, sin transacción real.
type fakeRunner struct {
	colors *fakeColorRepo
	facts  *fakeFactRepo
}

func (r *fakeRunner) RunRead(_ context.Context, fn func(
	colorRepo repository.ColorRepository,
	factRepo repository.StockFactRepository,
) error) error {
	return fn(r.colors, r.facts)
}

func rcv(productID int64, size string, colorID, qty int64, name, article string) stockdomain.ReceivedFact {
	return stockdomain.ReceivedFact{
		Key:         stockdomain.Key{ProductID: productID, Size: size, ColorID: colorID},
		ProductName: name,
		Article:     article,
		Quantity:    qty,
	}
}

func rlz(productID int64, size string, colorID, qty int64) stockdomain.RealizedFact {
	return stockdomain.RealizedFact{
		Key:      stockdomain.Key{ProductID: productID, Size: size, ColorID: colorID},
		Quantity: qty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAvailableStock_ResuelveNombresDeColor(t *testing.T) {
	runner := &fakeRunner{
		colors: &fakeColorRepo{colors: []*entity.Color{{ID: 2, Name: "Negro"}}},
		facts: &fakeFactRepo{
			received: []stockdomain.ReceivedFact{rcv(1, "L", 2, 10, "Camiseta", "2310-05")},
			realized: []stockdomain.RealizedFact{rlz(1, "L", 2, 5)},
		},
	}
	uc := appstock.NewUsecase(runner)

	out, err := uc.AvailableStock(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Negro", out[0].ColorName)
	assert.Equal(t, "Camiseta", out[0].ProductName)
	assert.Equal(t, "2310-05", out[0].Article)
	assert.Equal(t, int64(5), out[0].Qty)
}

// Un color ausente en la referencia no falla el cálculo: se muestra el id como texto.
func TestAvailableStock_ColorDesconocidoUsaIDComoNombre(t *testing.T) {
	runner := &fakeRunner{
		colors: &fakeColorRepo{colors: []*entity.Color{{ID: 1, Name: "Blanco"}}},
		facts: &fakeFactRepo{
			received: []stockdomain.ReceivedFact{rcv(1, "M", 77, 3, "Falda", "1805-01")},
		},
	}
	uc := appstock.NewUsecase(runner)

	out, err := uc.AvailableStock(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "77", out[0].ColorName)
}

// Un fallo de lectura en cualquiera de las tablas aborta todo: sin resultados parciales.
func TestAvailableStock_FalloDeLecturaAbortaSinParciales(t *testing.T) {
	readErr := errors.New("conexión perdida")
	cases := []struct {
		name  string
		facts *fakeFactRepo
	}{
		{"fallo en entradas", &fakeFactRepo{receivedErr: readErr}},
		{"fallo en salidas", &fakeFactRepo{
			received:    []stockdomain.ReceivedFact{rcv(1, "L", 2, 10, "Camiseta", "2310-05")},
			realizedErr: readErr,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runner := &fakeRunner{colors: &fakeColorRepo{}, facts: tc.facts}
			uc := appstock.NewUsecase(runner)

			out, err := uc.AvailableStock(context.Background())

			require.ErrorIs(t, err, readErr)
			assert.Nil(t, out)
		})
	}
}

func TestAvailableStock_FalloEnColoresAborta(t *testing.T) {
	readErr := errors.New("timeout")
	runner := &fakeRunner{
		colors: &fakeColorRepo{err: readErr},
		facts:  &fakeFactRepo{received: []stockdomain.ReceivedFact{rcv(1, "L", 2, 10, "Camiseta", "")}},
	}
	uc := appstock.NewUsecase(runner)

	out, err := uc.AvailableStock(context.Background())

	require.ErrorIs(t, err, readErr)
	assert.Nil(t, out)
}

// Dos llamadas sin escrituras intermedias devuelven exactamente lo mismo.
func TestAvailableStock_Idempotente(t *testing.T) {
	runner := &fakeRunner{
		colors: &fakeColorRepo{colors: []*entity.Color{{ID: 1, Name: "Blanco"}, {ID: 2, Name: "Negro"}}},
		facts: &fakeFactRepo{
			received: []stockdomain.ReceivedFact{
				rcv(3, "S", 1, 4, "Vestido", "0901-11"),
				rcv(1, "L", 2, 10, "Camiseta", "2310-05"),
				rcv(1, "L", 2, 2, "Camiseta", "2310-05"),
			},
			realized: []stockdomain.RealizedFact{rlz(3, "S", 1, 1)},
		},
	}
	uc := appstock.NewUsecase(runner)

	first, err := uc.AvailableStock(context.Background())
	require.NoError(t, err)
	second, err := uc.AvailableStock(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAvailableStock_SinHechosDevuelveListaVacia(t *testing.T) {
	runner := &fakeRunner{colors: &fakeColorRepo{}, facts: &fakeFactRepo{}}
	uc := appstock.NewUsecase(runner)

	out, err := uc.AvailableStock(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, out, "lista vacía, no null, para serializar como [] en JSON")
	assert.Empty(t, out)
}
