package repository

import "github.com/ilogush/backoffice-api/internal/domain/entity"

// RealizationRepository puerto de persistencia para realizaciones.
// Los renglones referencian su documento con realization_id y son append-only.
type RealizationRepository interface {
	Create(realization *entity.Realization) error
	CreateItem(item *entity.RealizationItem) error
	GetByID(id string) (*entity.Realization, error)
	ListItems(realizationID string) ([]*entity.RealizationItem, error)
	List(limit, offset int) ([]*entity.Realization, error)
}
