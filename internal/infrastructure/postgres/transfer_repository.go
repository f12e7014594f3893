package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/serodominguez/waresoft-api/internal/domain"
	"github.com/serodominguez/waresoft-api/internal/domain/entity"
	"github.com/serodominguez/waresoft-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL.
// Solo persiste estados 0/1/2: el estado pendiente (3) es de presentación
// y se deriva en el dominio.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de traslados. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create inserta cabecera y líneas; asigna transfer.ID.
func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	ctx := context.Background()
	query := `
		INSERT INTO transfers
			(code, send_date, total_amount, annotations, store_origin_id,
			 store_destination_id, status, sent_by, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		RETURNING id, sent_at`
	err := r.q.QueryRow(ctx, query,
		transfer.Code, transfer.SendDate, transfer.TotalAmount, transfer.Annotations,
		transfer.StoreOriginID, transfer.StoreDestinationID, transfer.Status, transfer.SentBy,
	).Scan(&transfer.ID, &transfer.SentAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: código %s", domain.ErrDuplicate, transfer.Code)
		}
		return fmt.Errorf("create transfer: %w", err)
	}

	detailQuery := `
		INSERT INTO transfer_details
			(transfer_id, item, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i := range transfer.Details {
		d := &transfer.Details[i]
		d.TransferID = transfer.ID
		if _, err := r.q.Exec(ctx, detailQuery,
			d.TransferID, d.Item, d.ProductID, d.Quantity, d.UnitPrice, d.TotalPrice,
		); err != nil {
			return fmt.Errorf("create transfer detail %d: %w", d.Item, err)
		}
	}
	return nil
}

const transferSelect = `
	SELECT id, code, send_date, receive_date, total_amount, annotations,
	       store_origin_id, store_destination_id, status,
	       sent_by, sent_at, received_by, received_at, cancelled_by, cancelled_at
	FROM transfers`

// GetByID obtiene un traslado con sus líneas (nil si no existe).
func (r *TransferRepo) GetByID(id int64) (*entity.Transfer, error) {
	return r.getOne(transferSelect+` WHERE id = $1`, id)
}

// GetByCode obtiene un traslado por código de documento (nil si no existe).
func (r *TransferRepo) GetByCode(code string) (*entity.Transfer, error) {
	return r.getOne(transferSelect+` WHERE code = $1`, code)
}

func (r *TransferRepo) getOne(query string, arg any) (*entity.Transfer, error) {
	ctx := context.Background()
	var t entity.Transfer
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&t.ID, &t.Code, &t.SendDate, &t.ReceiveDate, &t.TotalAmount, &t.Annotations,
		&t.StoreOriginID, &t.StoreDestinationID, &t.Status,
		&t.SentBy, &t.SentAt, &t.ReceivedBy, &t.ReceivedAt, &t.CancelledBy, &t.CancelledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}

	details, err := r.listDetails(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	t.Details = details
	return &t, nil
}

func (r *TransferRepo) listDetails(ctx context.Context, transferID int64) ([]entity.TransferDetail, error) {
	query := `
		SELECT transfer_id, item, product_id, quantity, unit_price, total_price
		FROM transfer_details WHERE transfer_id = $1
		ORDER BY item`
	rows, err := r.q.Query(ctx, query, transferID)
	if err != nil {
		return nil, fmt.Errorf("list transfer details: %w", err)
	}
	defer rows.Close()

	var details []entity.TransferDetail
	for rows.Next() {
		var d entity.TransferDetail
		if err := rows.Scan(&d.TransferID, &d.Item, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan transfer detail: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// Receive persiste la recepción: estado, fecha y auditoría del receptor.
func (r *TransferRepo) Receive(transfer *entity.Transfer) error {
	query := `
		UPDATE transfers
		SET status = $2, receive_date = $3, received_by = $4, received_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.Status, transfer.ReceiveDate, transfer.ReceivedBy, transfer.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("receive transfer: %w", err)
	}
	return nil
}

// Cancel persiste el estado anulado y la auditoría de anulación.
func (r *TransferRepo) Cancel(transfer *entity.Transfer) error {
	query := `
		UPDATE transfers SET status = $2, cancelled_by = $3, cancelled_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.Status, transfer.CancelledBy, transfer.CancelledAt,
	)
	if err != nil {
		return fmt.Errorf("cancel transfer: %w", err)
	}
	return nil
}

// ListByStore lista traslados donde la sucursal es origen o destino, más recientes primero.
func (r *TransferRepo) ListByStore(storeID int64, limit, offset int) ([]*entity.Transfer, error) {
	ctx := context.Background()
	query := transferSelect + `
	 WHERE store_origin_id = $1 OR store_destination_id = $1
	 ORDER BY sent_at DESC, id DESC
	 LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(
			&t.ID, &t.Code, &t.SendDate, &t.ReceiveDate, &t.TotalAmount, &t.Annotations,
			&t.StoreOriginID, &t.StoreDestinationID, &t.Status,
			&t.SentBy, &t.SentAt, &t.ReceivedBy, &t.ReceivedAt, &t.CancelledBy, &t.CancelledAt,
		); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, t := range list {
		details, err := r.listDetails(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		t.Details = details
	}
	return list, nil
}
