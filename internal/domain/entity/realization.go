package entity

import "time"

// Realization documento de salida de mercancía hacia un destinatario
// (consignación, traslado o venta).
type Realization struct {
	ID        string
	Recipient string
	Note      string
	CreatedBy string
	CreatedAt time.Time
}

// RealizationItem renglón de salida: hecho append-only por (producto, talla, color).
// Los renglones referencian su documento con RealizationID (FK explícita).
type RealizationItem struct {
	ID            string
	RealizationID string
	ProductID     int64
	Size          string
	ColorID       int64
	Quantity      int64
	CreatedAt     time.Time
}
