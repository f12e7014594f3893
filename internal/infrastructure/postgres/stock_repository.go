package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/serodominguez/waresoft-api/internal/domain/entity"
	"github.com/serodominguez/waresoft-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// Devuelve nil cuando la fila no existe: los flujos distinguen ausencia de cero.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `store_id, product_id, available, in_transit, unit_price, updated_at`

// Get obtiene el stock de un producto en una sucursal (nil si no existe).
func (r *StockRepo) Get(storeID, productID int64) (*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock WHERE store_id = $1 AND product_id = $2`
	return r.scanOne(query, storeID, productID)
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(storeID, productID int64) (*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock WHERE store_id = $1 AND product_id = $2
		FOR UPDATE`
	return r.scanOne(query, storeID, productID)
}

func (r *StockRepo) scanOne(query string, storeID, productID int64) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, storeID, productID).Scan(
		&s.StoreID, &s.ProductID, &s.Available, &s.InTransit, &s.UnitPrice, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Create inserta la fila de stock (primera entrada o recepción de un producto en la sucursal).
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (store_id, product_id, available, in_transit, unit_price, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())`
	_, err := r.q.Exec(context.Background(), query,
		stock.StoreID, stock.ProductID, stock.Available, stock.InTransit, stock.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("create stock: %w", err)
	}
	return nil
}

// AdjustQuantities persiste cantidades (available, in_transit). No toca unit_price:
// el precio se escribe solo por SetPrice.
func (r *StockRepo) AdjustQuantities(stock *entity.Stock) error {
	query := `
		UPDATE stock SET available = $3, in_transit = $4, updated_at = now()
		WHERE store_id = $1 AND product_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		stock.StoreID, stock.ProductID, stock.Available, stock.InTransit,
	)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	return nil
}

// SetPrice fija el precio unitario sin tocar las cantidades.
func (r *StockRepo) SetPrice(storeID, productID int64, price decimal.Decimal) error {
	query := `
		UPDATE stock SET unit_price = $3, updated_at = now()
		WHERE store_id = $1 AND product_id = $2`
	_, err := r.q.Exec(context.Background(), query, storeID, productID, price)
	if err != nil {
		return fmt.Errorf("set stock price: %w", err)
	}
	return nil
}

// ListByStore lista el inventario de una sucursal con paginación.
func (r *StockRepo) ListByStore(storeID int64, limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock WHERE store_id = $1
		ORDER BY product_id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.StoreID, &s.ProductID, &s.Available, &s.InTransit, &s.UnitPrice, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
