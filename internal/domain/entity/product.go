package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo (monturas, lentes, accesorios, etc.).
type Product struct {
	ID          int64
	Code        string
	Description string
	Brand       string
	Category    string
	Material    string
	Color       string
	Measurement string
	Price       decimal.Decimal // precio de lista; el precio por sucursal vive en stock
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
