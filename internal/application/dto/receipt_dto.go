package dto

import "time"

// ReceiptItemInput renglón para crear una recepción o realización.
type ReceiptItemInput struct {
	ProductID int64  `json:"product_id"`
	Size      string `json:"size"`
	ColorID   int64  `json:"color_id"`
	Quantity  int64  `json:"quantity"`
}

// CreateReceiptRequest body para POST /api/receipts.
type CreateReceiptRequest struct {
	Note  string             `json:"note,omitempty"`
	Items []ReceiptItemInput `json:"items"`
}

// ReceiptItemResponse renglón de recepción en respuestas.
type ReceiptItemResponse struct {
	ProductID int64  `json:"product_id"`
	Size      string `json:"size"`
	ColorID   int64  `json:"color_id"`
	Quantity  int64  `json:"quantity"`
}

// ReceiptResponse documento de recepción.
type ReceiptResponse struct {
	ID        string                `json:"id"`
	Note      string                `json:"note,omitempty"`
	CreatedBy string                `json:"created_by"`
	CreatedAt time.Time             `json:"created_at"`
	Items     []ReceiptItemResponse `json:"items,omitempty"`
}

// ReceiptListResponse listado paginado de recepciones.
type ReceiptListResponse struct {
	Items  []ReceiptResponse `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}
