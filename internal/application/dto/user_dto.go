package dto

import "time"

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterUserRequest body para POST /api/auth/register.
type RegisterUserRequest struct {
	StoreID   int64  `json:"store_id" validate:"required,gt=0"`
	UserName  string `json:"user_name" validate:"required,min=3"`
	Password  string `json:"password" validate:"required,min=8"`
	Names     string `json:"names" validate:"required"`
	LastNames string `json:"last_names"`
	Role      string `json:"role" validate:"omitempty,oneof=administrador almacenero vendedor"`
}

// UserResponse respuesta de usuario (sin hash de password).
type UserResponse struct {
	ID        int64     `json:"id"`
	StoreID   int64     `json:"store_id"`
	UserName  string    `json:"user_name"`
	Names     string    `json:"names"`
	LastNames string    `json:"last_names,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
