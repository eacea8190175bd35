package ports

import (
	"context"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// PriceListGenerator genera la lista de precios (PDF) de una categoría.
type PriceListGenerator interface {
	GeneratePriceList(ctx context.Context, category *entity.Category, products []*entity.Product) ([]byte, error)
}
