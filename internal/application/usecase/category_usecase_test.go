package usecase

import (
	"testing"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCategoryRepo repositorio en memoria para los tests del caso de uso.
type fakeCategoryRepo struct {
	items   map[string]*entity.Category
	updates int
	deletes int
}

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: map[string]*entity.Category{}}
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) Update(c *entity.Category) error {
	f.updates++
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(f.items))
	for _, c := range f.items {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Delete(id string) error {
	f.deletes++
	delete(f.items, id)
	return nil
}

// Description omitida queda como "" explícitamente.
func TestCategoryCreate_DescriptionPorDefectoVacia(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo())

	out, err := uc.Create(dto.CreateCategoryRequest{Name: "Perifericos"})
	require.NoError(t, err)
	assert.Equal(t, "Perifericos", out.Name)
	assert.Equal(t, "", out.Description)
	assert.NotEmpty(t, out.ID)
	assert.NotNil(t, out.Products, "la lista de productos va presente aunque vacía")
}

func TestCategoryCreate_SinNombre_EntradaInvalida(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.Create(dto.CreateCategoryRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// FindOne dos veces sin mutación intermedia devuelve lo mismo.
func TestCategoryGetByID_Idempotente(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo())
	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Audio", Description: "parlantes y más"})
	require.NoError(t, err)

	first, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	second, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCategoryGetByID_NoExiste(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

// Update de un id inexistente falla con NotFound y no escribe nada.
func TestCategoryUpdate_NoExiste_SinEscritura(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewCategoryUseCase(repo)

	name := "Nuevo"
	_, err := uc.Update("no-existe", dto.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Zero(t, repo.updates, "no debe haber escritura parcial")
}

// Merge parcial: solo cambian los campos enviados.
func TestCategoryUpdate_MergeParcial(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo())
	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Audio", Description: "original"})
	require.NoError(t, err)

	desc := "actualizada"
	out, err := uc.Update(created.ID, dto.UpdateCategoryRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Audio", out.Name, "name no enviado se conserva")
	assert.Equal(t, "actualizada", out.Description)
}

// Delete verifica existencia, borra incondicionalmente y devuelve lo eliminado.
// Un segundo Delete del mismo id falla con NotFound.
func TestCategoryDelete_SegundaVezNotFound(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewCategoryUseCase(repo)
	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Perifericos"})
	require.NoError(t, err)

	deleted, err := uc.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Equal(t, 1, repo.deletes, "el segundo intento no llega al store")
}
