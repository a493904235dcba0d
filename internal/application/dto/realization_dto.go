package dto

import "time"

// CreateRealizationRequest body para POST /api/realizations.
type CreateRealizationRequest struct {
	Recipient string             `json:"recipient"`
	Note      string             `json:"note,omitempty"`
	Items     []ReceiptItemInput `json:"items"`
}

// RealizationResponse documento de realización.
type RealizationResponse struct {
	ID        string                `json:"id"`
	Recipient string                `json:"recipient"`
	Note      string                `json:"note,omitempty"`
	CreatedBy string                `json:"created_by"`
	CreatedAt time.Time             `json:"created_at"`
	Items     []ReceiptItemResponse `json:"items,omitempty"`
}

// RealizationListResponse listado paginado de realizaciones.
type RealizationListResponse struct {
	Items  []RealizationResponse `json:"items"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}
