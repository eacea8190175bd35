package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, category_id, name, description, image, quantity, price, discount, special_price, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. El índice único (category_id, name) se traduce a Conflict.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CategoryID, p.Name, p.Description, p.Image, p.Quantity,
		p.Price, p.Discount, p.SpecialPrice, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflict("el producto %s ya existe en la categoría", p.Name)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetByCategoryAndName obtiene un producto por categoría y nombre exacto.
func (r *ProductRepo) GetByCategoryAndName(ctx context.Context, categoryID, name string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE category_id = $1 AND name = $2`, categoryID, name)
}

func (r *ProductRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza los campos editables (incluida la imagen) de un producto existente.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, image = $4, quantity = $5,
			price = $6, discount = $7, special_price = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Image, p.Quantity,
		p.Price, p.Discount, p.SpecialPrice, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflict("el producto %s ya existe en la categoría", p.Name)
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List devuelve una página de todos los productos.
func (r *ProductRepo) List(ctx context.Context, q repository.PageQuery) (repository.Page[*entity.Product], error) {
	return r.page(ctx, q, "", "TRUE")
}

// ListByCategory devuelve los productos de la categoría ordenados por precio ascendente y luego por q.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID string, q repository.PageQuery) (repository.Page[*entity.Product], error) {
	return r.page(ctx, q, "price ASC, ", "category_id = $1", categoryID)
}

// SearchByName filtra por subcadena del nombre sin distinguir mayúsculas.
func (r *ProductRepo) SearchByName(ctx context.Context, keyword string, q repository.PageQuery) (repository.Page[*entity.Product], error) {
	return r.page(ctx, q, "", `name ILIKE $1 ESCAPE '\'`, likeContains(keyword))
}

// page ejecuta COUNT + SELECT paginado con el filtro where (que usa $1..$n de args).
func (r *ProductRepo) page(ctx context.Context, q repository.PageQuery, orderPrefix, where string, args ...any) (repository.Page[*entity.Product], error) {
	page := repository.Page[*entity.Product]{PageNumber: q.PageNumber, PageSize: q.PageSize}
	order, err := orderBy(q, productSortColumns, orderPrefix)
	if err != nil {
		return page, err
	}
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE `+where, args...).Scan(&page.TotalElements); err != nil {
		return page, fmt.Errorf("count products: %w", err)
	}
	n := len(args)
	query := fmt.Sprintf(`SELECT %s FROM products WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		productColumns, where, order, n+1, n+2)
	rows, err := r.q.Query(ctx, query, append(args, q.PageSize, q.Offset())...)
	if err != nil {
		return page, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return page, fmt.Errorf("scan product: %w", err)
		}
		page.Content = append(page.Content, p)
	}
	return page, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// DeleteByCategory elimina todos los productos de una categoría y devuelve cuántos borró.
func (r *ProductRepo) DeleteByCategory(ctx context.Context, categoryID string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE category_id = $1`, categoryID)
	if err != nil {
		return 0, fmt.Errorf("delete products by category: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Image, &p.Quantity,
		&p.Price, &p.Discount, &p.SpecialPrice, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
