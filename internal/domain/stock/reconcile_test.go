package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilogush/backoffice-api/internal/domain/stock"
)

func key(productID int64, size string, colorID int64) stock.Key {
	return stock.Key{ProductID: productID, Size: size, ColorID: colorID}
}

// Sin realizaciones, el disponible es la suma de las entradas.
func TestAggregate_SinRealizaciones_SumaEntradas(t *testing.T) {
	received := []stock.ReceivedFact{
		{Key: key(1, "L", 2), ProductName: "Camiseta", Article: "2310-05", Quantity: 3},
		{Key: key(1, "L", 2), Quantity: 4},
		{Key: key(1, "M", 2), ProductName: "Camiseta", Article: "2310-05", Quantity: 2},
	}

	out := stock.Aggregate(received, nil)

	require.Len(t, out, 2)
	assert.Equal(t, int64(3+4), out[0].Quantity, "dos entradas de la misma Key deben acumularse")
	assert.Equal(t, "L", out[0].Size)
	assert.Equal(t, int64(2), out[1].Quantity)
	assert.Equal(t, "M", out[1].Size)
}

// La primera fila vista para una Key aporta las etiquetas.
func TestAggregate_PrimeraFilaAportaEtiquetas(t *testing.T) {
	received := []stock.ReceivedFact{
		{Key: key(1, "L", 2), ProductName: "Camiseta", Article: "2310-05", Quantity: 3},
		{Key: key(1, "L", 2), ProductName: "Otro nombre", Article: "XXXX", Quantity: 4},
	}

	out := stock.Aggregate(received, nil)

	require.Len(t, out, 1)
	assert.Equal(t, "Camiseta", out[0].ProductName)
	assert.Equal(t, "2310-05", out[0].Article)
}

// Escenario del documento: entran 10, salen 5 → queda una línea con 5.
func TestAggregate_EntradaDiezSalidaCinco(t *testing.T) {
	received := []stock.ReceivedFact{{Key: key(1, "L", 2), ProductName: "Camiseta", Quantity: 10}}
	realized := []stock.RealizedFact{{Key: key(1, "L", 2), Quantity: 5}}

	out := stock.Aggregate(received, realized)

	require.Len(t, out, 1)
	assert.Equal(t, int64(5), out[0].Quantity)
}

// Sobre-realización: entran 10, salen 15 → la línea se fija en cero y se excluye.
func TestAggregate_SobreRealizacionSeAbsorbe(t *testing.T) {
	received := []stock.ReceivedFact{{Key: key(1, "L", 2), Quantity: 10}}
	realized := []stock.RealizedFact{{Key: key(1, "L", 2), Quantity: 15}}

	out := stock.Aggregate(received, realized)

	assert.Empty(t, out, "las líneas en cero nunca aparecen en la salida")
}

// El disponible nunca es negativo, sin importar cuánto se haya realizado.
func TestAggregate_NuncaNegativo(t *testing.T) {
	received := []stock.ReceivedFact{
		{Key: key(1, "L", 2), Quantity: 10},
		{Key: key(7, "S", 1), Quantity: 1},
	}
	realized := []stock.RealizedFact{
		{Key: key(1, "L", 2), Quantity: 100},
		{Key: key(1, "L", 2), Quantity: 50},
		{Key: key(7, "S", 1), Quantity: 0},
	}

	out := stock.Aggregate(received, realized)

	for _, l := range out {
		assert.GreaterOrEqual(t, l.Quantity, int64(0))
	}
	require.Len(t, out, 1)
	assert.Equal(t, int64(7), out[0].ProductID)
}

// Una salida para una Key nunca recibida se descarta sin error ni entrada en la salida.
func TestAggregate_SalidaSinEntradaSeDescarta(t *testing.T) {
	received := []stock.ReceivedFact{{Key: key(1, "L", 2), Quantity: 10}}
	realized := []stock.RealizedFact{
		{Key: key(99, "XL", 3), Quantity: 4},
		{Key: key(1, "L", 2), Quantity: 1},
	}

	out := stock.Aggregate(received, realized)

	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ProductID)
	assert.Equal(t, int64(9), out[0].Quantity)
}

// Idempotencia: dos llamadas con los mismos hechos producen salidas idénticas.
func TestAggregate_Idempotente(t *testing.T) {
	received := []stock.ReceivedFact{
		{Key: key(3, "M", 1), ProductName: "Pantalón", Quantity: 6},
		{Key: key(1, "L", 2), ProductName: "Camiseta", Quantity: 10},
		{Key: key(2, "S", 2), ProductName: "Falda", Quantity: 4},
	}
	realized := []stock.RealizedFact{
		{Key: key(1, "L", 2), Quantity: 3},
		{Key: key(2, "S", 2), Quantity: 4},
	}

	first := stock.Aggregate(received, realized)
	second := stock.Aggregate(received, realized)

	assert.Equal(t, first, second)
}

// La salida está ordenada por (producto, talla, color).
func TestAggregate_SalidaOrdenada(t *testing.T) {
	received := []stock.ReceivedFact{
		{Key: key(2, "S", 1), Quantity: 1},
		{Key: key(1, "M", 9), Quantity: 1},
		{Key: key(1, "M", 2), Quantity: 1},
		{Key: key(1, "L", 5), Quantity: 1},
	}

	out := stock.Aggregate(received, nil)

	require.Len(t, out, 4)
	assert.Equal(t, key(1, "L", 5), out[0].Key)
	assert.Equal(t, key(1, "M", 2), out[1].Key)
	assert.Equal(t, key(1, "M", 9), out[2].Key)
	assert.Equal(t, key(2, "S", 1), out[3].Key)
}

func TestAggregate_SinHechos(t *testing.T) {
	assert.Empty(t, stock.Aggregate(nil, nil))
}
