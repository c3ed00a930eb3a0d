package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las lecturas devuelven el producto con su categoría cargada.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]*entity.Product, error)
	ListByCategoryID(categoryID string) ([]*entity.Product, error)
	// ListByCategoryName filtra por subcadena del nombre de la categoría,
	// sin distinguir mayúsculas (ILIKE). Subcadena vacía devuelve todo.
	ListByCategoryName(name string) ([]*entity.Product, error)
	Delete(id string) error
}
