package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "0,00", money(decimal.Zero))
	assert.Equal(t, "999,90", money(decimal.RequireFromString("999.9")))
	assert.Equal(t, "1.234.567,50", money(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "-1.000,00", money(decimal.NewFromInt(-1000)))
}

func TestGeneratePriceList(t *testing.T) {
	g := NewPriceListGenerator()
	p := &entity.Product{Name: "Widget", Quantity: 3, Price: decimal.NewFromInt(100), Discount: decimal.NewFromInt(10)}
	p.ApplyPricing()

	out, err := g.GeneratePriceList(context.Background(), &entity.Category{Name: "Tools"}, []*entity.Product{p})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
}
