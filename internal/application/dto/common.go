package dto

// PageRequest parámetros de paginación y orden de los listados.
// PageNumber empieza en 0; SortOrder "asc" (sin distinguir mayúsculas) es ascendente, cualquier otro valor descendente.
type PageRequest struct {
	PageNumber int    `query:"pageNumber"`
	PageSize   int    `query:"pageSize"`
	SortBy     string `query:"sortBy"`
	SortOrder  string `query:"sortOrder"`
}

// PageResponse sobre paginado que devuelven los listados.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	LastPage      bool  `json:"lastPage"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
