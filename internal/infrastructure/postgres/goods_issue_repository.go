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

var _ repository.GoodsIssueRepository = (*GoodsIssueRepo)(nil)

// GoodsIssueRepo implementación de GoodsIssueRepository sobre PostgreSQL.
type GoodsIssueRepo struct {
	q Querier
}

// NewGoodsIssueRepository construye el adaptador de salidas. Pasar pool o tx (Querier).
func NewGoodsIssueRepository(q Querier) *GoodsIssueRepo {
	return &GoodsIssueRepo{q: q}
}

// Create inserta cabecera y líneas; asigna issue.ID.
func (r *GoodsIssueRepo) Create(issue *entity.GoodsIssue) error {
	ctx := context.Background()
	query := `
		INSERT INTO goods_issues
			(code, issue_type, total_amount, annotations, store_id, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		issue.Code, issue.IssueType, issue.TotalAmount, issue.Annotations,
		issue.StoreID, issue.Status, issue.CreatedBy,
	).Scan(&issue.ID, &issue.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: código %s", domain.ErrDuplicate, issue.Code)
		}
		return fmt.Errorf("create goods issue: %w", err)
	}

	detailQuery := `
		INSERT INTO goods_issue_details
			(issue_id, item, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i := range issue.Details {
		d := &issue.Details[i]
		d.IssueID = issue.ID
		if _, err := r.q.Exec(ctx, detailQuery,
			d.IssueID, d.Item, d.ProductID, d.Quantity, d.UnitPrice, d.TotalPrice,
		); err != nil {
			return fmt.Errorf("create goods issue detail %d: %w", d.Item, err)
		}
	}
	return nil
}

const issueSelect = `
	SELECT id, code, issue_type, total_amount, annotations, store_id, status,
	       created_by, created_at, cancelled_by, cancelled_at
	FROM goods_issues`

// GetByID obtiene una salida con sus líneas (nil si no existe).
func (r *GoodsIssueRepo) GetByID(id int64) (*entity.GoodsIssue, error) {
	return r.getOne(issueSelect+` WHERE id = $1`, id)
}

// GetByCode obtiene una salida por código de documento (nil si no existe).
func (r *GoodsIssueRepo) GetByCode(code string) (*entity.GoodsIssue, error) {
	return r.getOne(issueSelect+` WHERE code = $1`, code)
}

func (r *GoodsIssueRepo) getOne(query string, arg any) (*entity.GoodsIssue, error) {
	ctx := context.Background()
	var is entity.GoodsIssue
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&is.ID, &is.Code, &is.IssueType, &is.TotalAmount, &is.Annotations,
		&is.StoreID, &is.Status, &is.CreatedBy, &is.CreatedAt, &is.CancelledBy, &is.CancelledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get goods issue: %w", err)
	}

	details, err := r.listDetails(ctx, is.ID)
	if err != nil {
		return nil, err
	}
	is.Details = details
	return &is, nil
}

func (r *GoodsIssueRepo) listDetails(ctx context.Context, issueID int64) ([]entity.GoodsIssueDetail, error) {
	query := `
		SELECT issue_id, item, product_id, quantity, unit_price, total_price
		FROM goods_issue_details WHERE issue_id = $1
		ORDER BY item`
	rows, err := r.q.Query(ctx, query, issueID)
	if err != nil {
		return nil, fmt.Errorf("list goods issue details: %w", err)
	}
	defer rows.Close()

	var details []entity.GoodsIssueDetail
	for rows.Next() {
		var d entity.GoodsIssueDetail
		if err := rows.Scan(&d.IssueID, &d.Item, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan goods issue detail: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// Cancel persiste el estado anulado y la auditoría de anulación.
func (r *GoodsIssueRepo) Cancel(issue *entity.GoodsIssue) error {
	query := `
		UPDATE goods_issues SET status = $2, cancelled_by = $3, cancelled_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		issue.ID, issue.Status, issue.CancelledBy, issue.CancelledAt,
	)
	if err != nil {
		return fmt.Errorf("cancel goods issue: %w", err)
	}
	return nil
}

// ListByStore lista salidas de una sucursal, más recientes primero.
func (r *GoodsIssueRepo) ListByStore(storeID int64, limit, offset int) ([]*entity.GoodsIssue, error) {
	ctx := context.Background()
	query := issueSelect + `
	 WHERE store_id = $1
	 ORDER BY created_at DESC, id DESC
	 LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list goods issues: %w", err)
	}
	defer rows.Close()

	var list []*entity.GoodsIssue
	for rows.Next() {
		var is entity.GoodsIssue
		if err := rows.Scan(
			&is.ID, &is.Code, &is.IssueType, &is.TotalAmount, &is.Annotations,
			&is.StoreID, &is.Status, &is.CreatedBy, &is.CreatedAt, &is.CancelledBy, &is.CancelledAt,
		); err != nil {
			return nil, fmt.Errorf("scan goods issue: %w", err)
		}
		list = append(list, &is)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, is := range list {
		details, err := r.listDetails(ctx, is.ID)
		if err != nil {
			return nil, err
		}
		is.Details = details
	}
	return list, nil
}
