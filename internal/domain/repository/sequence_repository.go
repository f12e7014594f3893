package repository

import "github.com/serodominguez/waresoft-api/internal/domain/entity"

// SequenceRepository define el puerto para las filas contadoras de códigos de
// documento. GetForUpdate bloquea la fila (SELECT FOR UPDATE) para que dos
// registros concurrentes no generen el mismo código.
type SequenceRepository interface {
	GetForUpdate(name string) (*entity.Sequence, error) // nil si no existe
	Create(seq *entity.Sequence) error
	Update(seq *entity.Sequence) error
}
