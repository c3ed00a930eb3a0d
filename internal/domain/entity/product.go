package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Pertenece exactamente a una Category.
// Category se carga siempre junto con el producto (contrato fijo de eager load).
type Product struct {
	ID           string
	Name         string
	Description  string
	Price        decimal.Decimal // no negativo
	Stock        int             // no negativo
	FreeShipping bool
	CategoryID   string
	Category     *Category
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
