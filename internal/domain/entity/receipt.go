package entity

import "time"

// Receipt documento de recepción de mercancía (entrada a inventario).
type Receipt struct {
	ID        string
	Note      string
	CreatedBy string
	CreatedAt time.Time
}

// ReceiptItem renglón de recepción: hecho append-only por (producto, talla, color).
// Nunca se actualiza ni se borra; el stock disponible se deriva leyendo estos hechos.
type ReceiptItem struct {
	ID        string
	ReceiptID string
	ProductID int64
	Size      string // "XS".."3XL"
	ColorID   int64
	Quantity  int64
	CreatedAt time.Time
}
