package dto

// StockLineResponse fila de stock disponible para GET /api/stock.
type StockLineResponse struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Article     string `json:"article"`
	Size        string `json:"size"`
	ColorID     int64  `json:"color_id"`
	ColorName   string `json:"color_name"`
	Qty         int64  `json:"qty"`
}
