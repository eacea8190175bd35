package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/ports"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

// CategoryUseCase casos de uso del ciclo de vida de categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	tx   ports.CatalogTxRunner
	log  *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, tx ports.CatalogTxRunner, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, tx: tx, log: log.Component("category_usecase")}
}

// List devuelve una página de categorías. Una página vacía (incluida la que está más allá de la última) es NotFound.
func (uc *CategoryUseCase) List(ctx context.Context, in dto.PageRequest) (*dto.PageResponse[dto.CategoryResponse], error) {
	q, err := toPageQuery(in, repository.CategorySortFields)
	if err != nil {
		return nil, err
	}
	page, err := uc.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(page.Content) == 0 {
		return nil, domain.NewEmptyResult("no se encontraron categorías")
	}
	return toPageResponse(page, toCategoryResponse), nil
}

// Create crea una categoría. El nombre debe ser único (comparación exacta).
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByName(ctx, in.CategoryName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		uc.log.Warn().Str("name", in.CategoryName).Msg("categoría duplicada")
		return nil, categoryExists(in.CategoryName)
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.CategoryName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	uc.log.Info().Str("category_id", category.ID).Str("name", category.Name).Msg("categoría creada")
	out := toCategoryResponse(category)
	return &out, nil
}

// Delete elimina la categoría junto con sus productos (en una sola transacción)
// y devuelve la categoría tal como estaba antes de borrarse.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	var deleted *entity.Category
	var removedProducts int64
	err := uc.tx.RunCatalog(ctx, func(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) error {
		category, err := categoryRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.NewNotFound("categoría", "categoryId", id)
		}
		if removedProducts, err = productRepo.DeleteByCategory(ctx, id); err != nil {
			return err
		}
		if err := categoryRepo.Delete(ctx, id); err != nil {
			return err
		}
		deleted = category
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("category_id", id).Int64("products_removed", removedProducts).Msg("categoría eliminada")
	out := toCategoryResponse(deleted)
	return &out, nil
}

// Update renombra la categoría id. Primero verifica que exista; luego que el nombre
// no pertenezca a otra categoría (renombrar "X" a "X" es válido).
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewNotFound("categoría", "categoryId", id)
	}
	other, err := uc.repo.GetByName(ctx, in.CategoryName)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		uc.log.Warn().Str("category_id", id).Str("name", in.CategoryName).Msg("nombre de categoría en uso")
		return nil, categoryExists(in.CategoryName)
	}
	category.Name = in.CategoryName
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	uc.log.Info().Str("category_id", id).Str("name", category.Name).Msg("categoría actualizada")
	out := toCategoryResponse(category)
	return &out, nil
}

func categoryExists(name string) error {
	return domain.NewConflict("ya existe una categoría con el nombre %s", name)
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		CategoryID:   c.ID,
		CategoryName: c.Name,
	}
}
