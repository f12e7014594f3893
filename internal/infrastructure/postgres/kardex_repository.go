package postgres

import (
	"context"
	"fmt"

	"github.com/serodominguez/waresoft-api/internal/domain/entity"
	"github.com/serodominguez/waresoft-api/internal/domain/repository"
)

var _ repository.KardexRepository = (*KardexRepo)(nil)

// KardexRepo lectura del kardex: normaliza con UNION ALL las líneas de
// entradas, salidas y traslados no anulados que tocan un producto en una
// sucursal. El signo de cada cantidad se decide aquí; el saldo corrido lo
// calcula el dominio.
type KardexRepo struct {
	q Querier
}

// NewKardexRepository construye el adaptador de kardex. Pasar pool o tx (Querier).
func NewKardexRepository(q Querier) *KardexRepo {
	return &KardexRepo{q: q}
}

// ListMovements lista los movimientos con signo de un producto en una sucursal.
// Entradas suman, salidas restan; los traslados restan vistos desde el origen y
// suman vistos desde el destino. Los documentos anulados quedan fuera.
func (r *KardexRepo) ListMovements(storeID, productID int64) ([]entity.KardexMovement, error) {
	query := `
		SELECT gr.code, gr.created_at, 'Entrada' AS movement_type, gr.receipt_type AS document_info,
		       d.quantity, d.unit_cost AS unit_price
		FROM goods_receipts gr
		JOIN goods_receipt_details d ON d.receipt_id = gr.id
		WHERE gr.store_id = $1 AND d.product_id = $2 AND gr.status <> 0

		UNION ALL

		SELECT gi.code, gi.created_at, 'Salida', gi.issue_type,
		       -d.quantity, d.unit_price
		FROM goods_issues gi
		JOIN goods_issue_details d ON d.issue_id = gi.id
		WHERE gi.store_id = $1 AND d.product_id = $2 AND gi.status <> 0

		UNION ALL

		SELECT t.code, t.sent_at, 'Traslado', s.name,
		       CASE WHEN t.store_origin_id = $1 THEN -d.quantity ELSE d.quantity END,
		       d.unit_price
		FROM transfers t
		JOIN transfer_details d ON d.transfer_id = t.id
		JOIN stores s ON s.id = CASE WHEN t.store_origin_id = $1
		                             THEN t.store_destination_id
		                             ELSE t.store_origin_id END
		WHERE (t.store_origin_id = $1 OR t.store_destination_id = $1)
		  AND d.product_id = $2 AND t.status <> 0`

	rows, err := r.q.Query(context.Background(), query, storeID, productID)
	if err != nil {
		return nil, fmt.Errorf("list kardex movements: %w", err)
	}
	defer rows.Close()

	var movs []entity.KardexMovement
	for rows.Next() {
		var m entity.KardexMovement
		if err := rows.Scan(
			&m.DocumentCode, &m.DocumentDate, &m.MovementType, &m.DocumentInfo,
			&m.Quantity, &m.UnitPrice,
		); err != nil {
			return nil, fmt.Errorf("scan kardex movement: %w", err)
		}
		movs = append(movs, m)
	}
	return movs, rows.Err()
}
