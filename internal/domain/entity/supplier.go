package entity

import "time"

// Supplier representa un proveedor de mercadería (referenciado por las entradas).
type Supplier struct {
	ID          int64
	CompanyName string
	TaxID       string
	Contact     string
	Phone       string
	Email       string
	Address     string
	City        string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
