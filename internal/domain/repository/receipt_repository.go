package repository

import "github.com/ilogush/backoffice-api/internal/domain/entity"

// ReceiptRepository puerto de persistencia para recepciones.
// Los renglones son append-only: no hay Update ni Delete sobre receipt_items.
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	CreateItem(item *entity.ReceiptItem) error
	GetByID(id string) (*entity.Receipt, error)
	ListItems(receiptID string) ([]*entity.ReceiptItem, error)
	List(limit, offset int) ([]*entity.Receipt, error)
}
