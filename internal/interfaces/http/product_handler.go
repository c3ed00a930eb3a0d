package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/catalog"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para Product: CRUD administrativo
// y las consultas de catálogo de la vitrina.
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	catalog *catalog.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, catalogUC *catalog.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc, catalog: catalogUC}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.CategoryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y category_id son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID (con categoría)
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos (con categoría) aplicando filtros de vitrina
// @Tags         products
// @Produce      json
// @Param        name          query  string  false  "Subcadena del nombre del producto"
// @Param        maxPrice      query  string  false  "Precio máximo (inclusive)"
// @Param        freeShipping  query  bool    false  "Solo envío gratis"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.catalog.List()
	if err != nil {
		return h.mapError(c, err)
	}
	filters := map[string]string{}
	for _, key := range []string{catalog.FilterName, catalog.FilterMaxPrice, catalog.FilterFreeShipping} {
		if v := c.Query(key); v != "" {
			filters[key] = v
		}
	}
	return c.JSON(catalog.Narrow(out, filters))
}

// ListByCategory godoc
// @Summary      Listar productos por ID de categoría
// @Tags         products
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/category/{categoryId} [get]
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	categoryID := c.Params("categoryId")
	if categoryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "categoryId es requerido"})
	}
	out, err := h.catalog.ListByCategoryID(categoryID)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar productos por nombre de categoría (subcadena, sin distinguir mayúsculas)
// @Tags         products
// @Produce      json
// @Param        name  path  string  false  "Subcadena del nombre de la categoría; vacía devuelve todo"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/search/{name} [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	// Subcadena vacía es un caso válido: coincide con todo el catálogo.
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre de búsqueda malformado"})
	}
	out, err := h.catalog.ListByCategoryName(name)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (merge parcial)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Delete(id)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

func (h *ProductHandler) mapError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrProductNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrProductNotFound.Error()})
	case domain.ErrInvalidCategory:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CATEGORY", Message: domain.ErrInvalidCategory.Error()})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price y stock no pueden ser negativos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
