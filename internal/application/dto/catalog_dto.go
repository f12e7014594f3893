package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Sucursales ────────────────────────────────────────────────────────────────

// CreateStoreRequest body para POST /api/stores.
type CreateStoreRequest struct {
	Code    string `json:"code" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
}

// UpdateStoreRequest body para PUT /api/stores/:id (campos opcionales).
type UpdateStoreRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	City    *string `json:"city,omitempty"`
}

// StoreResponse respuesta de sucursal.
type StoreResponse struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	City      string    `json:"city,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreListResponse listado paginado de sucursales.
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ── Productos ─────────────────────────────────────────────────────────────────

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Code        string          `json:"code" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Brand       string          `json:"brand"`
	Category    string          `json:"category"`
	Material    string          `json:"material"`
	Color       string          `json:"color"`
	Measurement string          `json:"measurement"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
type UpdateProductRequest struct {
	Description *string          `json:"description,omitempty"`
	Brand       *string          `json:"brand,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Material    *string          `json:"material,omitempty"`
	Color       *string          `json:"color,omitempty"`
	Measurement *string          `json:"measurement,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// ProductResponse respuesta de producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Brand       string          `json:"brand,omitempty"`
	Category    string          `json:"category,omitempty"`
	Material    string          `json:"material,omitempty"`
	Color       string          `json:"color,omitempty"`
	Measurement string          `json:"measurement,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	CompanyName string `json:"company_name" validate:"required"`
	TaxID       string `json:"tax_id"`
	Contact     string `json:"contact"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address"`
	City        string `json:"city"`
}

// UpdateSupplierRequest body para PUT /api/suppliers/:id (campos opcionales).
type UpdateSupplierRequest struct {
	CompanyName *string `json:"company_name,omitempty"`
	TaxID       *string `json:"tax_id,omitempty"`
	Contact     *string `json:"contact,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
}

// SupplierResponse respuesta de proveedor.
type SupplierResponse struct {
	ID          int64     `json:"id"`
	CompanyName string    `json:"company_name"`
	TaxID       string    `json:"tax_id,omitempty"`
	Contact     string    `json:"contact,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SupplierListResponse listado paginado de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Names          string `json:"names" validate:"required"`
	LastNames      string `json:"last_names"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	Phone          string `json:"phone"`
	Email          string `json:"email" validate:"omitempty,email"`
	Address        string `json:"address"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id (campos opcionales).
type UpdateCustomerRequest struct {
	Names          *string `json:"names,omitempty"`
	LastNames      *string `json:"last_names,omitempty"`
	DocumentType   *string `json:"document_type,omitempty"`
	DocumentNumber *string `json:"document_number,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty"`
	Address        *string `json:"address,omitempty"`
}

// CustomerResponse respuesta de cliente.
type CustomerResponse struct {
	ID             int64     `json:"id"`
	Names          string    `json:"names"`
	LastNames      string    `json:"last_names,omitempty"`
	DocumentType   string    `json:"document_type,omitempty"`
	DocumentNumber string    `json:"document_number,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	Address        string    `json:"address,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CustomerListResponse listado paginado de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
