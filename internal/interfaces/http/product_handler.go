package http

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/domain"
)

// ProductService contrato que el handler necesita de *usecase.ProductUseCase.
type ProductService interface {
	Add(ctx context.Context, categoryID string, in dto.ProductRequest) (*dto.ProductResponse, error)
	List(ctx context.Context, in dto.PageRequest) (*dto.PageResponse[dto.ProductResponse], error)
	SearchByCategory(ctx context.Context, categoryID string, in dto.PageRequest) (*dto.PageResponse[dto.ProductResponse], error)
	SearchByKeyword(ctx context.Context, keyword string, in dto.PageRequest) (*dto.PageResponse[dto.ProductResponse], error)
	Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id string) (*dto.ProductResponse, error)
	UpdateImage(ctx context.Context, id, originalName string, data io.Reader) (*dto.ProductResponse, error)
	PriceList(ctx context.Context, categoryID string) ([]byte, error)
}

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	svc   ProductService
	pages PageDefaults
}

// NewProductHandler construye el handler.
func NewProductHandler(svc ProductService, pages PageDefaults) *ProductHandler {
	return &ProductHandler{svc: svc, pages: pages}
}

func (h *ProductHandler) parseBody(c *fiber.Ctx) (dto.ProductRequest, error) {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return in, domain.InvalidInput("cuerpo inválido: %v", err)
	}
	return in, validateStruct(in)
}

// Add godoc
// @Summary      Crear producto en una categoría
// @Description  specialPrice se calcula como price - discount% y la imagen inicial es default.png.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría"
// @Param        body        body  dto.ProductRequest  true  "Datos del producto"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/categories/{categoryId}/product [post]
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	in, err := h.parseBody(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.Add(c.UserContext(), c.Params("categoryId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        pageNumber  query  int     false  "Página (desde 0)"
// @Param        pageSize    query  int     false  "Tamaño de página"
// @Param        sortBy      query  string  false  "productId | productName | price | discount | quantity | specialPrice"
// @Param        sortOrder   query  string  false  "asc | desc"
// @Success      200  {object}  dto.PageResponse[dto.ProductResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/public/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext(), pageRequest(c, h.pages, "productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SearchByCategory godoc
// @Summary      Productos de una categoría (ordenados primero por precio)
// @Tags         products
// @Produce      json
// @Param        categoryId  path   string  true   "ID de la categoría"
// @Param        pageNumber  query  int     false  "Página (desde 0)"
// @Param        pageSize    query  int     false  "Tamaño de página"
// @Param        sortBy      query  string  false  "Orden secundario"
// @Param        sortOrder   query  string  false  "asc | desc"
// @Success      200  {object}  dto.PageResponse[dto.ProductResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/public/categories/{categoryId}/products [get]
func (h *ProductHandler) SearchByCategory(c *fiber.Ctx) error {
	out, err := h.svc.SearchByCategory(c.UserContext(), c.Params("categoryId"), pageRequest(c, h.pages, "productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SearchByKeyword godoc
// @Summary      Buscar productos por palabra clave en el nombre
// @Tags         products
// @Produce      json
// @Param        keyword     path   string  true   "Texto a buscar (sin distinguir mayúsculas)"
// @Param        pageNumber  query  int     false  "Página (desde 0)"
// @Param        pageSize    query  int     false  "Tamaño de página"
// @Success      200  {object}  dto.PageResponse[dto.ProductResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/public/products/keyword/{keyword} [get]
func (h *ProductHandler) SearchByKeyword(c *fiber.Ctx) error {
	keyword, err := url.PathUnescape(c.Params("keyword"))
	if err != nil {
		return writeError(c, domain.InvalidInput("keyword mal codificado: %v", err))
	}
	out, err := h.svc.SearchByKeyword(c.UserContext(), keyword, pageRequest(c, h.pages, "productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Conserva la imagen actual y recalcula specialPrice.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.ProductRequest  true  "Datos del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{productId} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	in, err := h.parseBody(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.Update(c.UserContext(), c.Params("productId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{productId} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	out, err := h.svc.Delete(c.UserContext(), c.Params("productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateImage godoc
// @Summary      Reemplazar la imagen de un producto
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        productId  path      string  true  "ID del producto"
// @Param        image      formData  file    true  "Archivo de imagen"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{productId}/image [put]
func (h *ProductHandler) UpdateImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return writeError(c, domain.InvalidInput("falta el archivo 'image'"))
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, fmt.Errorf("abrir archivo subido: %w", err))
	}
	defer f.Close()

	out, err := h.svc.UpdateImage(c.UserContext(), c.Params("productId"), fh.Filename, f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PriceList godoc
// @Summary      Lista de precios en PDF de una categoría
// @Tags         products
// @Produce      application/pdf
// @Param        categoryId  path  string  true  "ID de la categoría"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/public/categories/{categoryId}/products/pdf [get]
func (h *ProductHandler) PriceList(c *fiber.Ctx) error {
	id := c.Params("categoryId")
	pdf, err := h.svc.PriceList(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="lista-precios-%s.pdf"`, id))
	return c.Send(pdf)
}
