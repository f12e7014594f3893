package entity

import "time"

// Store representa una sucursal/tienda donde se mantiene inventario (multi-sucursal).
type Store struct {
	ID        int64
	Code      string
	Name      string
	Address   string
	Phone     string
	City      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
