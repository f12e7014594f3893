package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/serodominguez/waresoft-api/internal/domain/entity"
	"github.com/serodominguez/waresoft-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo implementación de SequenceRepository sobre PostgreSQL.
// Usar siempre dentro de la transacción del flujo: GetForUpdate bloquea la fila
// contadora y serializa la generación de códigos concurrentes.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador de secuencias. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// GetForUpdate obtiene la fila contadora con bloqueo (SELECT FOR UPDATE).
// Devuelve nil si la secuencia aún no existe.
func (r *SequenceRepo) GetForUpdate(name string) (*entity.Sequence, error) {
	query := `
		SELECT name, current_value, last_updated
		FROM sequences WHERE name = $1
		FOR UPDATE`
	var s entity.Sequence
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&s.Name, &s.CurrentValue, &s.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sequence for update: %w", err)
	}
	return &s, nil
}

// Create inserta la fila contadora con su valor inicial.
func (r *SequenceRepo) Create(seq *entity.Sequence) error {
	query := `
		INSERT INTO sequences (name, current_value, last_updated)
		VALUES ($1, $2, now())`
	_, err := r.q.Exec(context.Background(), query, seq.Name, seq.CurrentValue)
	if err != nil {
		return fmt.Errorf("create sequence: %w", err)
	}
	return nil
}

// Update persiste el valor incrementado del contador.
func (r *SequenceRepo) Update(seq *entity.Sequence) error {
	query := `
		UPDATE sequences SET current_value = $2, last_updated = now()
		WHERE name = $1`
	_, err := r.q.Exec(context.Background(), query, seq.Name, seq.CurrentValue)
	if err != nil {
		return fmt.Errorf("update sequence: %w", err)
	}
	return nil
}
