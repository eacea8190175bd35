package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalog-api/internal/application/dto"
)

// PageDefaults valores por defecto de los parámetros de paginación.
type PageDefaults struct {
	PageSize int
	MaxSize  int
}

const defaultSortOrder = "asc"

// pageRequest lee pageNumber, pageSize, sortBy y sortOrder aplicando defaults.
// pageSize se recorta a MaxSize; los valores negativos los rechaza el caso de uso.
func pageRequest(c *fiber.Ctx, d PageDefaults, defaultSortBy string) dto.PageRequest {
	in := dto.PageRequest{
		PageNumber: c.QueryInt("pageNumber", 0),
		PageSize:   c.QueryInt("pageSize", d.PageSize),
		SortBy:     c.Query("sortBy", defaultSortBy),
		SortOrder:  c.Query("sortOrder", defaultSortOrder),
	}
	if d.MaxSize > 0 && in.PageSize > d.MaxSize {
		in.PageSize = d.MaxSize
	}
	return in
}
