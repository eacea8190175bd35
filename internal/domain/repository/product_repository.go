package repository

import (
	"context"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los Get* devuelven (nil, nil) cuando no hay fila.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByCategoryAndName busca por nombre exacto (sensible a mayúsculas) dentro de una categoría.
	GetByCategoryAndName(ctx context.Context, categoryID, name string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, q PageQuery) (Page[*entity.Product], error)
	// ListByCategory ordena primero por precio ascendente y luego por q.SortBy.
	ListByCategory(ctx context.Context, categoryID string, q PageQuery) (Page[*entity.Product], error)
	// SearchByName filtra por subcadena de nombre sin distinguir mayúsculas.
	SearchByName(ctx context.Context, keyword string, q PageQuery) (Page[*entity.Product], error)
	Delete(ctx context.Context, id string) error
	DeleteByCategory(ctx context.Context, categoryID string) (int64, error)
}
