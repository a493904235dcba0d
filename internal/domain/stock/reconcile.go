// Package stock calcula el stock disponible a partir de los hechos append-only
// de recepción y realización. Es lógica pura: sin IO, sin estado compartido.
package stock

import "sort"

// Key identidad de agrupación del inventario: (producto, talla, color).
// No es única por fila; varios hechos pueden compartir la misma Key.
type Key struct {
	ProductID int64
	Size      string
	ColorID   int64
}

// ReceivedFact hecho de entrada (renglón de recepción) proyectado con las
// etiquetas del producto para mostrar.
type ReceivedFact struct {
	Key
	ProductName string
	Article     string
	Quantity    int64
}

// RealizedFact hecho de salida (renglón de realización).
type RealizedFact struct {
	Key
	Quantity int64
}

// Line stock disponible agregado para una Key. No se persiste; se recalcula
// en cada consulta.
type Line struct {
	Key
	ProductName string
	Article     string
	Quantity    int64
}

// Aggregate pliega los hechos de entrada por Key sumando cantidades y luego
// resta los de salida con piso en cero.
//
// Reglas (deliberadas, no accidentales):
//   - La primera fila vista para una Key aporta nombre y artículo.
//   - Una salida cuya Key nunca tuvo entrada se descarta en silencio.
//   - Sobre-realización se absorbe: el acumulado se fija en cero, nunca negativo.
//   - Solo se devuelven líneas con cantidad estrictamente positiva.
//
// El resultado se ordena por (ProductID, Size, ColorID): la iteración de mapas
// en Go no es determinista y dos llamadas sin escrituras intermedias deben
// producir exactamente la misma salida.
func Aggregate(received []ReceivedFact, realized []RealizedFact) []Line {
	acc := make(map[Key]*Line, len(received))
	for _, f := range received {
		if l, ok := acc[f.Key]; ok {
			l.Quantity += f.Quantity
			continue
		}
		acc[f.Key] = &Line{
			Key:         f.Key,
			ProductName: f.ProductName,
			Article:     f.Article,
			Quantity:    f.Quantity,
		}
	}

	for _, f := range realized {
		l, ok := acc[f.Key]
		if !ok {
			// salida sin entrada previa: inconsistencia de datos tolerada
			continue
		}
		l.Quantity -= f.Quantity
		if l.Quantity < 0 {
			l.Quantity = 0
		}
	}

	out := make([]Line, 0, len(acc))
	for _, l := range acc {
		if l.Quantity > 0 {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.ProductID != b.ProductID {
			return a.ProductID < b.ProductID
		}
		if a.Size != b.Size {
			return a.Size < b.Size
		}
		return a.ColorID < b.ColorID
	})
	return out
}
