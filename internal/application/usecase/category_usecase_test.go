package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

func newCategoryUC(s *memStore) *usecase.CategoryUseCase {
	return usecase.NewCategoryUseCase(s.categoryRepo(), s, logger.Nop())
}

func firstPage(sortBy string) dto.PageRequest {
	return dto.PageRequest{PageNumber: 0, PageSize: 10, SortBy: sortBy, SortOrder: "asc"}
}

func TestCategoryCreate_NombreDuplicado_Conflict(t *testing.T) {
	s := newMemStore()
	uc := newCategoryUC(s)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CategoryRequest{CategoryName: "Electronics"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CategoryRequest{CategoryName: "Electronics"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	out, err := uc.Create(ctx, dto.CategoryRequest{CategoryName: "Books"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.CategoryID)
	assert.Equal(t, "Books", out.CategoryName)
}

func TestCategoryCreate_NombreSensibleAMayusculas(t *testing.T) {
	s := newMemStore()
	uc := newCategoryUC(s)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CategoryRequest{CategoryName: "Books"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CategoryRequest{CategoryName: "books"})
	assert.NoError(t, err, "la comparación de nombres es exacta")
}

func TestCategory_RoundTripCrearListarEliminar(t *testing.T) {
	s := newMemStore()
	uc := newCategoryUC(s)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CategoryRequest{CategoryName: "X"})
	require.NoError(t, err)

	page, err := uc.List(ctx, firstPage("categoryId"))
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "X", page.Content[0].CategoryName)
	assert.Equal(t, created.CategoryID, page.Content[0].CategoryID)
	assert.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
	assert.True(t, page.LastPage)

	deleted, err := uc.Delete(ctx, created.CategoryID)
	require.NoError(t, err)
	assert.Equal(t, "X", deleted.CategoryName)

	_, err = uc.List(ctx, firstPage("categoryId"))
	assert.ErrorIs(t, err, domain.ErrNotFound, "sin categorías el listado es NotFound")
}

func TestCategoryList_PaginaMasAllaDelFinal_NotFound(t *testing.T) {
	s := newMemStore()
	uc := newCategoryUC(s)
	ctx := context.Background()
	for _, n := range []string{"A", "B", "C"} {
		_, err := uc.Create(ctx, dto.CategoryRequest{CategoryName: n})
		require.NoError(t, err)
	}

	page, err := uc.List(ctx, dto.PageRequest{PageNumber: 1, PageSize: 2, SortBy: "categoryName", SortOrder: "ASC"})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "C", page.Content[0].CategoryName)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.LastPage)

	_, err = uc.List(ctx, dto.PageRequest{PageNumber: 2, PageSize: 2, SortBy: "categoryName", SortOrder: "asc"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryList_OrdenDescendentePorDefecto(t *testing.T) {
	s := newMemStore()
	uc := newCategoryUC(s)
	ctx := context.Background()
	for _, n := range []string{"A", "B", "C"} {
		_, err := uc.Create(ctx, dto.CategoryRequest{CategoryName: n})
		require.NoError(t, err)
	}

	page, err := uc.List(ctx, dto.PageRequest{PageSize: 3, SortBy: "categoryName", SortOrder: "cualquiera"})
	require.NoError(t, err)
	names := []string{page.Content[0].CategoryName, page.Content[1].CategoryName, page.Content[2].CategoryName}
	assert.Equal(t, []string{"C", "B", "A"}, names)
	assert.True(t, page.LastPage)
}

func TestCategoryList_ParametrosInvalidos(t *testing.T) {
	uc := newCategoryUC(newMemStore())
	ctx := context.Background()

	_, err := uc.List(ctx, dto.PageRequest{PageNumber: -1, PageSize: 10, SortBy: "categoryId"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.List(ctx, dto.PageRequest{PageNumber: 0, PageSize: 0, SortBy: "categoryId"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.List(ctx, dto.PageRequest{PageNumber: 0, PageSize: 10, SortBy: "price"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryDelete_Inexistente_NotFoundConID(t *testing.T) {
	uc := newCategoryUC(newMemStore())

	_, err := uc.Delete(context.Background(), "missing-id")
	require.ErrorIs(t, err, domain.ErrNotFound)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "categoryId", nf.Field)
	assert.Equal(t, "missing-id", nf.Value)
	assert.Contains(t, err.Error(), "missing-id")
}

func TestCategoryDelete_EliminaSusProductos(t *testing.T) {
	s := newMemStore()
	uc := newCategoryUC(s)
	ctx := context.Background()

	cat, err := uc.Create(ctx, dto.CategoryRequest{CategoryName: "Tools"})
	require.NoError(t, err)
	other, err := uc.Create(ctx, dto.CategoryRequest{CategoryName: "Toys"})
	require.NoError(t, err)
	s.products["p1"] = &entity.Product{ID: "p1", CategoryID: cat.CategoryID, Name: "Hammer"}
	s.products["p2"] = &entity.Product{ID: "p2", CategoryID: other.CategoryID, Name: "Ball"}

	_, err = uc.Delete(ctx, cat.CategoryID)
	require.NoError(t, err)

	assert.NotContains(t, s.products, "p1")
	assert.Contains(t, s.products, "p2")
	assert.NotContains(t, s.categories, cat.CategoryID)
}

func TestCategoryUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("renombrar al mismo nombre es válido", func(t *testing.T) {
		s := newMemStore()
		uc := newCategoryUC(s)
		cat, err := uc.Create(ctx, dto.CategoryRequest{CategoryName: "X"})
		require.NoError(t, err)

		out, err := uc.Update(ctx, cat.CategoryID, dto.CategoryRequest{CategoryName: "X"})
		require.NoError(t, err)
		assert.Equal(t, cat.CategoryID, out.CategoryID)
	})

	t.Run("nombre de otra categoría es Conflict", func(t *testing.T) {
		s := newMemStore()
		uc := newCategoryUC(s)
		_, err := uc.Create(ctx, dto.CategoryRequest{CategoryName: "X"})
		require.NoError(t, err)
		y, err := uc.Create(ctx, dto.CategoryRequest{CategoryName: "Y"})
		require.NoError(t, err)

		_, err = uc.Update(ctx, y.CategoryID, dto.CategoryRequest{CategoryName: "X"})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("categoría inexistente es NotFound aunque el nombre colisione", func(t *testing.T) {
		s := newMemStore()
		uc := newCategoryUC(s)
		_, err := uc.Create(ctx, dto.CategoryRequest{CategoryName: "X"})
		require.NoError(t, err)

		_, err = uc.Update(ctx, "nope", dto.CategoryRequest{CategoryName: "X"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("renombra y persiste", func(t *testing.T) {
		s := newMemStore()
		uc := newCategoryUC(s)
		cat, err := uc.Create(ctx, dto.CategoryRequest{CategoryName: "Old"})
		require.NoError(t, err)

		out, err := uc.Update(ctx, cat.CategoryID, dto.CategoryRequest{CategoryName: "New"})
		require.NoError(t, err)
		assert.Equal(t, "New", out.CategoryName)
		assert.Equal(t, "New", s.categories[cat.CategoryID].Name)
	})
}

func TestCategory_ErrorDeAlmacenamientoSePropaga(t *testing.T) {
	s := newMemStore()
	s.failWith = errStorageDown
	uc := newCategoryUC(s)

	_, err := uc.Create(context.Background(), dto.CategoryRequest{CategoryName: "X"})
	assert.Same(t, errStorageDown, err)

	_, err = uc.List(context.Background(), firstPage("categoryId"))
	assert.Same(t, errStorageDown, err)
}
