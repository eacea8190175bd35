package dto

import "github.com/shopspring/decimal"

// ProductRequest entrada para crear o actualizar un producto. specialPrice nunca se recibe: se calcula.
type ProductRequest struct {
	ProductName string          `json:"productName" validate:"required,min=3"`
	Description string          `json:"description" validate:"required,min=6"`
	Quantity    int             `json:"quantity" validate:"gte=0"`
	Price       decimal.Decimal `json:"price" validate:"gte=0,lte=9999999999.99"`
	Discount    decimal.Decimal `json:"discount" validate:"gte=0,lte=100"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ProductID    string          `json:"productId"`
	CategoryID   string          `json:"categoryId"`
	ProductName  string          `json:"productName"`
	Description  string          `json:"description"`
	Image        string          `json:"image"`
	ImageURL     string          `json:"imageUrl"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Discount     decimal.Decimal `json:"discount"`
	SpecialPrice decimal.Decimal `json:"specialPrice"`
}
