package entity

// Color referencia de colores (id → nombre para mostrar).
// Se consulta siempre como full scan; la tabla es pequeña y estable.
type Color struct {
	ID   int64
	Name string
}
