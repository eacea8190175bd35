package dto

// CategoryRequest entrada para crear o renombrar una categoría.
type CategoryRequest struct {
	CategoryName string `json:"categoryName" validate:"required"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}
