package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/domain"
)

// CategoryService contrato que el handler necesita de *usecase.CategoryUseCase.
type CategoryService interface {
	List(ctx context.Context, in dto.PageRequest) (*dto.PageResponse[dto.CategoryResponse], error)
	Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error)
	Update(ctx context.Context, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id string) (*dto.CategoryResponse, error)
}

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	svc   CategoryService
	pages PageDefaults
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(svc CategoryService, pages PageDefaults) *CategoryHandler {
	return &CategoryHandler{svc: svc, pages: pages}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Param        pageNumber  query  int     false  "Página (desde 0)"  default(0)
// @Param        pageSize    query  int     false  "Tamaño de página"  default(50)
// @Param        sortBy      query  string  false  "categoryId | categoryName"  default(categoryId)
// @Param        sortOrder   query  string  false  "asc | desc"  default(asc)
// @Success      200  {object}  dto.PageResponse[dto.CategoryResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/public/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext(), pageRequest(c, h.pages, "categoryId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/public/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, domain.InvalidInput("cuerpo inválido: %v", err))
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Renombrar categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría"
// @Param        body        body  dto.CategoryRequest  true  "Nuevo nombre"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/public/categories/{categoryId} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, domain.InvalidInput("cuerpo inválido: %v", err))
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.Update(c.UserContext(), c.Params("categoryId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría (y sus productos)
// @Tags         categories
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/categories/{categoryId} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	out, err := h.svc.Delete(c.UserContext(), c.Params("categoryId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
