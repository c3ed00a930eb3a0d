package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" validate:"min=0"`
	Stock        int             `json:"stock" validate:"min=0"`
	FreeShipping bool            `json:"free_shipping"`
	CategoryID   string          `json:"category_id" validate:"required,uuid"`
}

// UpdateProductRequest entrada para actualizar un producto (merge parcial por campo).
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	Stock        *int             `json:"stock"`
	FreeShipping *bool            `json:"free_shipping"`
	CategoryID   *string          `json:"category_id" validate:"omitempty,uuid"`
}

// ProductCategoryResponse categoría embebida en la respuesta de un producto
// (sin la lista de productos, para no anidar recursivamente).
type ProductCategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProductResponse salida de un producto. Category va cargada salvo cuando el
// producto viene embebido dentro de su propia categoría.
type ProductResponse struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	Description  string                   `json:"description"`
	Price        decimal.Decimal          `json:"price"`
	Stock        int                      `json:"stock"`
	FreeShipping bool                     `json:"free_shipping"`
	CategoryID   string                   `json:"category_id"`
	Category     *ProductCategoryResponse `json:"category,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}
