package repository

import "strings"

// SortDirection dirección de ordenamiento de un listado paginado.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection: "asc" (sin distinguir mayúsculas) es ascendente; cualquier otro valor es descendente.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(s, string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

// PageQuery describe una página solicitada. PageNumber empieza en 0.
// SortBy es el nombre de propiedad expuesto (categoryId, price, ...); el adaptador lo traduce a columna.
type PageQuery struct {
	PageNumber int
	PageSize   int
	SortBy     string
	Direction  SortDirection
}

// Offset devuelve el desplazamiento de filas correspondiente a la página.
func (q PageQuery) Offset() int {
	return q.PageNumber * q.PageSize
}

// Page es una porción ordenada de un conjunto mayor.
type Page[T any] struct {
	Content       []T
	PageNumber    int
	PageSize      int
	TotalElements int64
}

// TotalPages devuelve ceil(TotalElements / PageSize).
func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// IsLast indica que no hay página siguiente.
func (p Page[T]) IsLast() bool {
	return p.PageNumber+1 >= p.TotalPages()
}

// Propiedades por las que la API permite ordenar.
var (
	CategorySortFields = []string{"categoryId", "categoryName"}
	ProductSortFields  = []string{"productId", "productName", "price", "discount", "quantity", "specialPrice"}
)
