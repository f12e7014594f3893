package repository

import "github.com/serodominguez/waresoft-api/internal/domain/entity"

// StoreRepository define el puerto de persistencia para sucursales.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id int64) (*entity.Store, error)
	Update(store *entity.Store) error
	List(limit, offset int) ([]*entity.Store, error)
	Deactivate(id int64) error
}
