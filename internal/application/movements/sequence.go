package movements

import (
	"fmt"
	"time"

	"github.com/serodominguez/waresoft-api/internal/domain/entity"
	"github.com/serodominguez/waresoft-api/internal/domain/repository"
)

// generateCode produce el siguiente código de documento de una secuencia:
// prefijo + valor con relleno de ceros a 6 dígitos (ej. "ENT-000042").
// Lee la fila contadora con FOR UPDATE dentro de la transacción del caller,
// así dos registros concurrentes no pueden generar el mismo código. Sin
// relleno de huecos: anular un documento no libera su número.
func generateCode(seqRepo repository.SequenceRepository, name, prefix string) (string, error) {
	seq, err := seqRepo.GetForUpdate(name)
	if err != nil {
		return "", fmt.Errorf("leer secuencia %s: %w", name, err)
	}
	if seq == nil {
		seq = &entity.Sequence{Name: name, CurrentValue: 1, LastUpdated: time.Now()}
		if err := seqRepo.Create(seq); err != nil {
			return "", fmt.Errorf("crear secuencia %s: %w", name, err)
		}
		return fmt.Sprintf("%s%06d", prefix, seq.CurrentValue), nil
	}
	seq.CurrentValue++
	seq.LastUpdated = time.Now()
	if err := seqRepo.Update(seq); err != nil {
		return "", fmt.Errorf("actualizar secuencia %s: %w", name, err)
	}
	return fmt.Sprintf("%s%06d", prefix, seq.CurrentValue), nil
}
