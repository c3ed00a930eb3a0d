package entity

import "time"

// Category representa una categoría del catálogo.
// Products se carga siempre junto con la categoría (contrato fijo de eager load).
type Category struct {
	ID          string
	Name        string
	Description string // "" si no se indica al crear
	Products    []Product
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
