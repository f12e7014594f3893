package repository

import "github.com/serodominguez/waresoft-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	FindByUserName(userName string) (*entity.User, error)
	// NamesByIDs resuelve nombres para mostrar de un conjunto de usuarios
	// (remitente/receptor en el listado de traslados).
	NamesByIDs(ids []int64) (map[int64]string, error)
	List(limit, offset int) ([]*entity.User, error)
}
