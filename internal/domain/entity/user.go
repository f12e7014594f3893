package entity

import "time"

// Roles de usuario.
const (
	RoleAdministrador = "administrador"
	RoleAlmacenero    = "almacenero"
	RoleVendedor      = "vendedor"
)

// User representa un usuario del sistema, asignado a una sucursal.
type User struct {
	ID           int64
	StoreID      int64
	UserName     string
	PasswordHash string
	Names        string
	LastNames    string
	Role         string
	Status       string // active | inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombre para mostrar (remitente/receptor en traslados).
func (u *User) FullName() string {
	if u.LastNames == "" {
		return u.Names
	}
	return u.Names + " " + u.LastNames
}
