package usecase

import (
	"slices"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

// toPageQuery valida la página solicitada y resuelve la dirección de orden.
func toPageQuery(in dto.PageRequest, sortable []string) (repository.PageQuery, error) {
	if in.PageNumber < 0 {
		return repository.PageQuery{}, domain.InvalidInput("pageNumber debe ser >= 0")
	}
	if in.PageSize < 1 {
		return repository.PageQuery{}, domain.InvalidInput("pageSize debe ser >= 1")
	}
	if !slices.Contains(sortable, in.SortBy) {
		return repository.PageQuery{}, domain.InvalidInput("no se puede ordenar por %q", in.SortBy)
	}
	return repository.PageQuery{
		PageNumber: in.PageNumber,
		PageSize:   in.PageSize,
		SortBy:     in.SortBy,
		Direction:  repository.ParseSortDirection(in.SortOrder),
	}, nil
}

// toPageResponse convierte una página de entidades en el sobre paginado de salida.
func toPageResponse[E, R any](p repository.Page[E], conv func(E) R) *dto.PageResponse[R] {
	content := make([]R, 0, len(p.Content))
	for _, e := range p.Content {
		content = append(content, conv(e))
	}
	return &dto.PageResponse[R]{
		Content:       content,
		PageNumber:    p.PageNumber,
		PageSize:      p.PageSize,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages(),
		LastPage:      p.IsLast(),
	}
}
