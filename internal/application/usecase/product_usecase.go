package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/ports"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

// priceListPageSize tamaño de lote al recorrer los productos de una categoría para la lista de precios.
const priceListPageSize = 100

// Límites de las columnas price NUMERIC(12,2) y discount NUMERIC(5,2).
const moneyScale = 2

var (
	maxPrice    = decimal.RequireFromString("9999999999.99")
	maxDiscount = decimal.NewFromInt(100)
)

// ProductUseCase casos de uso del ciclo de vida de productos.
// SpecialPrice siempre se deriva de Price y Discount; Image solo cambia vía UpdateImage.
type ProductUseCase struct {
	products     repository.ProductRepository
	categories   repository.CategoryRepository
	images       ports.ImageStorage
	priceList    ports.PriceListGenerator
	imageBaseURL string
	log          *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	images ports.ImageStorage,
	priceList ports.PriceListGenerator,
	imageBaseURL string,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		products:     products,
		categories:   categories,
		images:       images,
		priceList:    priceList,
		imageBaseURL: imageBaseURL,
		log:          log.Component("product_usecase"),
	}
}

// Add crea un producto en la categoría indicada. El nombre no puede repetirse dentro de la categoría.
func (uc *ProductUseCase) Add(ctx context.Context, categoryID string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := checkAmounts(in); err != nil {
		return nil, err
	}
	category, err := uc.mustGetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	existing, err := uc.products.GetByCategoryAndName(ctx, category.ID, in.ProductName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		uc.log.Warn().Str("category_id", category.ID).Str("name", in.ProductName).Msg("producto duplicado en la categoría")
		return nil, domain.NewConflict("el producto %s ya existe en la categoría %s", in.ProductName, category.Name)
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CategoryID:  category.ID,
		Name:        in.ProductName,
		Description: in.Description,
		Image:       entity.DefaultImage,
		Quantity:    in.Quantity,
		Price:       in.Price,
		Discount:    in.Discount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	product.ApplyPricing()
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Str("category_id", category.ID).Msg("producto creado")
	return uc.toResponse(product), nil
}

// List devuelve una página de todos los productos.
func (uc *ProductUseCase) List(ctx context.Context, in dto.PageRequest) (*dto.PageResponse[dto.ProductResponse], error) {
	q, err := toPageQuery(in, repository.ProductSortFields)
	if err != nil {
		return nil, err
	}
	page, err := uc.products.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(page.Content) == 0 {
		return nil, domain.NewEmptyResult("no se encontraron productos")
	}
	return toPageResponse(page, uc.toResponseValue), nil
}

// SearchByCategory devuelve los productos de una categoría, ordenados primero por precio ascendente.
func (uc *ProductUseCase) SearchByCategory(ctx context.Context, categoryID string, in dto.PageRequest) (*dto.PageResponse[dto.ProductResponse], error) {
	category, err := uc.mustGetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	q, err := toPageQuery(in, repository.ProductSortFields)
	if err != nil {
		return nil, err
	}
	page, err := uc.products.ListByCategory(ctx, category.ID, q)
	if err != nil {
		return nil, err
	}
	if len(page.Content) == 0 {
		return nil, domain.NewEmptyResult("la categoría " + category.Name + " no tiene productos")
	}
	return toPageResponse(page, uc.toResponseValue), nil
}

// SearchByKeyword devuelve los productos cuyo nombre contiene keyword (sin distinguir mayúsculas).
func (uc *ProductUseCase) SearchByKeyword(ctx context.Context, keyword string, in dto.PageRequest) (*dto.PageResponse[dto.ProductResponse], error) {
	q, err := toPageQuery(in, repository.ProductSortFields)
	if err != nil {
		return nil, err
	}
	page, err := uc.products.SearchByName(ctx, keyword, q)
	if err != nil {
		return nil, err
	}
	if len(page.Content) == 0 {
		return nil, domain.NewEmptyResult("no se encontraron productos con la palabra clave: " + keyword)
	}
	return toPageResponse(page, uc.toResponseValue), nil
}

// Update sobrescribe nombre, descripción, cantidad, precio y descuento, y recalcula SpecialPrice.
// La imagen y la categoría no cambian.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := checkAmounts(in); err != nil {
		return nil, err
	}
	product, err := uc.mustGetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ProductName != product.Name {
		other, err := uc.products.GetByCategoryAndName(ctx, product.CategoryID, in.ProductName)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != product.ID {
			uc.log.Warn().Str("product_id", id).Str("name", in.ProductName).Msg("nombre de producto en uso en la categoría")
			return nil, domain.NewConflict("el producto %s ya existe en la categoría", in.ProductName)
		}
	}
	product.Name = in.ProductName
	product.Description = in.Description
	product.Quantity = in.Quantity
	product.Price = in.Price
	product.Discount = in.Discount
	product.ApplyPricing()
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", id).Msg("producto actualizado")
	return uc.toResponse(product), nil
}

// Delete elimina el producto y devuelve su estado previo.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.mustGetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.products.Delete(ctx, id); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", id).Msg("producto eliminado")
	return uc.toResponse(product), nil
}

// UpdateImage guarda la imagen en el almacenamiento externo y asocia el nombre de archivo resultante.
func (uc *ProductUseCase) UpdateImage(ctx context.Context, id, originalName string, data io.Reader) (*dto.ProductResponse, error) {
	product, err := uc.mustGetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	fileName, err := uc.images.Store(ctx, originalName, data)
	if err != nil {
		return nil, err
	}
	product.Image = fileName
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", id).Str("image", fileName).Msg("imagen de producto actualizada")
	return uc.toResponse(product), nil
}

// PriceList genera el PDF con todos los productos de la categoría, ordenados por precio.
func (uc *ProductUseCase) PriceList(ctx context.Context, categoryID string) ([]byte, error) {
	category, err := uc.mustGetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	var all []*entity.Product
	q := repository.PageQuery{PageSize: priceListPageSize, SortBy: "productName", Direction: repository.SortAsc}
	for {
		page, err := uc.products.ListByCategory(ctx, category.ID, q)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Content...)
		if page.IsLast() {
			break
		}
		q.PageNumber++
	}
	if len(all) == 0 {
		return nil, domain.NewEmptyResult("la categoría " + category.Name + " no tiene productos")
	}
	return uc.priceList.GeneratePriceList(ctx, category, all)
}

// checkAmounts rechaza importes que la base de datos redondearía o no podría guardar:
// specialPrice se calcula sobre el valor recibido y debe coincidir con el almacenado.
func checkAmounts(in dto.ProductRequest) error {
	switch {
	case in.Price.IsNegative() || in.Price.GreaterThan(maxPrice):
		return domain.InvalidInput("price debe estar entre 0 y %s", maxPrice)
	case !in.Price.Equal(in.Price.Round(moneyScale)):
		return domain.InvalidInput("price admite como máximo %d decimales", moneyScale)
	case in.Discount.IsNegative() || in.Discount.GreaterThan(maxDiscount):
		return domain.InvalidInput("discount debe estar entre 0 y 100")
	case !in.Discount.Equal(in.Discount.Round(moneyScale)):
		return domain.InvalidInput("discount admite como máximo %d decimales", moneyScale)
	}
	return nil
}

func (uc *ProductUseCase) mustGetCategory(ctx context.Context, id string) (*entity.Category, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewNotFound("categoría", "categoryId", id)
	}
	return category, nil
}

func (uc *ProductUseCase) mustGetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFound("producto", "productId", id)
	}
	return product, nil
}

func (uc *ProductUseCase) toResponse(p *entity.Product) *dto.ProductResponse {
	out := uc.toResponseValue(p)
	return &out
}

func (uc *ProductUseCase) toResponseValue(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ProductID:    p.ID,
		CategoryID:   p.CategoryID,
		ProductName:  p.Name,
		Description:  p.Description,
		Image:        p.Image,
		ImageURL:     uc.imageBaseURL + "/" + p.Image,
		Quantity:     p.Quantity,
		Price:        p.Price,
		Discount:     p.Discount,
		SpecialPrice: p.SpecialPrice,
	}
}
