package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultImage es el nombre de archivo asignado a todo producto recién creado.
const DefaultImage = "default.png"

var hundredth = decimal.New(1, -2)

// Product representa un artículo vendible; pertenece a exactamente una categoría.
// Name es único dentro de su categoría, no globalmente.
// SpecialPrice es derivado: nunca lo envía el cliente.
type Product struct {
	ID           string
	CategoryID   string
	Name         string
	Description  string
	Image        string
	Quantity     int
	Price        decimal.Decimal
	Discount     decimal.Decimal // porcentaje 0..100
	SpecialPrice decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SpecialPrice devuelve price - discount*0.01*price.
func SpecialPrice(price, discount decimal.Decimal) decimal.Decimal {
	return price.Sub(discount.Mul(hundredth).Mul(price))
}

// ApplyPricing recalcula SpecialPrice a partir de Price y Discount.
func (p *Product) ApplyPricing() {
	p.SpecialPrice = SpecialPrice(p.Price, p.Discount)
}
