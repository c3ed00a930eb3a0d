// Package catalog resuelve los listados de la vitrina: consultas relacionales
// contra el store (por categoría, por nombre de categoría) y el filtrado en
// memoria que aplica la tienda sobre un listado ya obtenido.
package catalog

import (
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UseCase motor de consulta del catálogo. Un resultado vacío nunca es error:
// solo se propagan fallos del store.
type UseCase struct {
	products repository.ProductRepository
}

// NewUseCase construye el motor de consulta.
func NewUseCase(products repository.ProductRepository) *UseCase {
	return &UseCase{products: products}
}

// List devuelve todos los productos con su categoría, en el orden del store.
func (uc *UseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

// ListByCategoryID devuelve los productos cuya FK coincide exactamente.
func (uc *UseCase) ListByCategoryID(categoryID string) ([]dto.ProductResponse, error) {
	list, err := uc.products.ListByCategoryID(categoryID)
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

// ListByCategoryName devuelve los productos cuya categoría contiene la subcadena,
// sin distinguir mayúsculas. Subcadena vacía coincide con todo el catálogo.
func (uc *UseCase) ListByCategoryName(name string) ([]dto.ProductResponse, error) {
	list, err := uc.products.ListByCategoryName(name)
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

func toResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *usecase.ToProductResponse(p))
	}
	return items
}
