package entity

import "time"

// Customer representa un cliente de la óptica.
type Customer struct {
	ID             int64
	Names          string
	LastNames      string
	DocumentType   string // CI, NIT, pasaporte
	DocumentNumber string
	Phone          string
	Email          string
	Address        string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
