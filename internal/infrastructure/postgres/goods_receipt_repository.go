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

var _ repository.GoodsReceiptRepository = (*GoodsReceiptRepo)(nil)

// GoodsReceiptRepo implementación de GoodsReceiptRepository sobre PostgreSQL.
type GoodsReceiptRepo struct {
	q Querier
}

// NewGoodsReceiptRepository construye el adaptador de entradas. Pasar pool o tx (Querier).
func NewGoodsReceiptRepository(q Querier) *GoodsReceiptRepo {
	return &GoodsReceiptRepo{q: q}
}

// Create inserta cabecera y líneas; asigna receipt.ID.
func (r *GoodsReceiptRepo) Create(receipt *entity.GoodsReceipt) error {
	ctx := context.Background()
	query := `
		INSERT INTO goods_receipts
			(code, receipt_type, document_date, document_type, document_number,
			 total_amount, supplier_id, store_id, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		receipt.Code, receipt.ReceiptType, receipt.DocumentDate, receipt.DocumentType,
		receipt.DocumentNumber, receipt.TotalAmount, receipt.SupplierID, receipt.StoreID,
		receipt.Status, receipt.CreatedBy,
	).Scan(&receipt.ID, &receipt.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: código %s", domain.ErrDuplicate, receipt.Code)
		}
		return fmt.Errorf("create goods receipt: %w", err)
	}

	detailQuery := `
		INSERT INTO goods_receipt_details
			(receipt_id, item, product_id, quantity, unit_cost, total_cost)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i := range receipt.Details {
		d := &receipt.Details[i]
		d.ReceiptID = receipt.ID
		if _, err := r.q.Exec(ctx, detailQuery,
			d.ReceiptID, d.Item, d.ProductID, d.Quantity, d.UnitCost, d.TotalCost,
		); err != nil {
			return fmt.Errorf("create goods receipt detail %d: %w", d.Item, err)
		}
	}
	return nil
}

// GetByID obtiene una entrada con sus líneas (nil si no existe).
func (r *GoodsReceiptRepo) GetByID(id int64) (*entity.GoodsReceipt, error) {
	query := receiptSelect + ` WHERE id = $1`
	return r.getOne(query, id)
}

// GetByCode obtiene una entrada por código de documento (nil si no existe).
func (r *GoodsReceiptRepo) GetByCode(code string) (*entity.GoodsReceipt, error) {
	query := receiptSelect + ` WHERE code = $1`
	return r.getOne(query, code)
}

const receiptSelect = `
	SELECT id, code, receipt_type, document_date, document_type, document_number,
	       total_amount, supplier_id, store_id, status, created_by, created_at,
	       cancelled_by, cancelled_at
	FROM goods_receipts`

func (r *GoodsReceiptRepo) getOne(query string, arg any) (*entity.GoodsReceipt, error) {
	ctx := context.Background()
	var rec entity.GoodsReceipt
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&rec.ID, &rec.Code, &rec.ReceiptType, &rec.DocumentDate, &rec.DocumentType,
		&rec.DocumentNumber, &rec.TotalAmount, &rec.SupplierID, &rec.StoreID,
		&rec.Status, &rec.CreatedBy, &rec.CreatedAt, &rec.CancelledBy, &rec.CancelledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get goods receipt: %w", err)
	}

	details, err := r.listDetails(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	rec.Details = details
	return &rec, nil
}

func (r *GoodsReceiptRepo) listDetails(ctx context.Context, receiptID int64) ([]entity.GoodsReceiptDetail, error) {
	query := `
		SELECT receipt_id, item, product_id, quantity, unit_cost, total_cost
		FROM goods_receipt_details WHERE receipt_id = $1
		ORDER BY item`
	rows, err := r.q.Query(ctx, query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("list goods receipt details: %w", err)
	}
	defer rows.Close()

	var details []entity.GoodsReceiptDetail
	for rows.Next() {
		var d entity.GoodsReceiptDetail
		if err := rows.Scan(&d.ReceiptID, &d.Item, &d.ProductID, &d.Quantity, &d.UnitCost, &d.TotalCost); err != nil {
			return nil, fmt.Errorf("scan goods receipt detail: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// Cancel persiste el estado anulado y la auditoría de anulación.
func (r *GoodsReceiptRepo) Cancel(receipt *entity.GoodsReceipt) error {
	query := `
		UPDATE goods_receipts SET status = $2, cancelled_by = $3, cancelled_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.Status, receipt.CancelledBy, receipt.CancelledAt,
	)
	if err != nil {
		return fmt.Errorf("cancel goods receipt: %w", err)
	}
	return nil
}

// ListByStore lista entradas de una sucursal, más recientes primero.
func (r *GoodsReceiptRepo) ListByStore(storeID int64, limit, offset int) ([]*entity.GoodsReceipt, error) {
	ctx := context.Background()
	query := receiptSelect + `
	 WHERE store_id = $1
	 ORDER BY created_at DESC, id DESC
	 LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list goods receipts: %w", err)
	}
	defer rows.Close()

	var list []*entity.GoodsReceipt
	for rows.Next() {
		var rec entity.GoodsReceipt
		if err := rows.Scan(
			&rec.ID, &rec.Code, &rec.ReceiptType, &rec.DocumentDate, &rec.DocumentType,
			&rec.DocumentNumber, &rec.TotalAmount, &rec.SupplierID, &rec.StoreID,
			&rec.Status, &rec.CreatedBy, &rec.CreatedAt, &rec.CancelledBy, &rec.CancelledAt,
		); err != nil {
			return nil, fmt.Errorf("scan goods receipt: %w", err)
		}
		list = append(list, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, rec := range list {
		details, err := r.listDetails(ctx, rec.ID)
		if err != nil {
			return nil, err
		}
		rec.Details = details
	}
	return list, nil
}
