package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// seedNamespace fija los UUID generados: el mismo CSV produce siempre los mismos IDs.
var seedNamespace = uuid.MustParse("6f1d6a52-8c0e-4d43-9a55-2f0d3c1b7e90")

// maxPrice es el mayor valor que admite products.price NUMERIC(12,2).
var maxPrice = decimal.RequireFromString("9999999999.99")

type seedProduct struct {
	category string
	product  entity.Product
}

// readCatalogCSV lee filas "category,product,description,quantity,price,discount".
// latin1 decodifica la entrada como ISO-8859-1. La primera fila se toma como cabecera si no es numérica.
func readCatalogCSV(r io.Reader, latin1 bool) ([]seedProduct, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 6
	cr.TrimLeadingSpace = true

	var out []seedProduct
	seen := make(map[string]bool)
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if line == 1 && isHeader(rec) {
			continue
		}
		sp, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		key := sp.category + "\x00" + sp.product.Name
		if seen[key] {
			return nil, fmt.Errorf("línea %d: producto %q repetido en la categoría %q", line, sp.product.Name, sp.category)
		}
		seen[key] = true
		out = append(out, sp)
	}
	return out, nil
}

func isHeader(rec []string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(rec[3]))
	return err != nil
}

func parseRecord(rec []string) (seedProduct, error) {
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}
	category, name, desc := rec[0], rec[1], rec[2]
	switch {
	case category == "":
		return seedProduct{}, errors.New("categoría vacía")
	case len([]rune(name)) < 3:
		return seedProduct{}, fmt.Errorf("nombre %q: mínimo 3 caracteres", name)
	case len([]rune(desc)) < 6:
		return seedProduct{}, fmt.Errorf("descripción de %q: mínimo 6 caracteres", name)
	}
	qty, err := strconv.Atoi(rec[3])
	if err != nil || qty < 0 {
		return seedProduct{}, fmt.Errorf("cantidad inválida %q", rec[3])
	}
	price, err := decimal.NewFromString(rec[4])
	if err != nil || price.IsNegative() || price.GreaterThan(maxPrice) || !price.Equal(price.Round(2)) {
		return seedProduct{}, fmt.Errorf("precio inválido %q", rec[4])
	}
	discount, err := decimal.NewFromString(rec[5])
	if err != nil || discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) || !discount.Equal(discount.Round(2)) {
		return seedProduct{}, fmt.Errorf("descuento inválido %q", rec[5])
	}

	p := entity.Product{
		ID:          productID(category, name).String(),
		CategoryID:  categoryID(category).String(),
		Name:        name,
		Description: desc,
		Image:       entity.DefaultImage,
		Quantity:    qty,
		Price:       price,
		Discount:    discount,
	}
	p.ApplyPricing()
	return seedProduct{category: category, product: p}, nil
}

func categoryID(name string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte("category:"+name))
}

func productID(category, name string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte("product:"+category+"\x00"+name))
}

// writeSQL escribe el script de carga. Re-ejecutarlo no duplica filas (ON CONFLICT DO NOTHING).
func writeSQL(w io.Writer, source string, rows []seedProduct) error {
	cats := make(map[string]bool)
	for _, r := range rows {
		cats[r.category] = true
	}
	names := make([]string, 0, len(cats))
	for c := range cats {
		names = append(names, c)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "-- Catálogo inicial generado desde %s\n\n", source)
	b.WriteString("-- 1. Categorías\n")
	for _, c := range names {
		fmt.Fprintf(&b, "INSERT INTO categories (id, name) VALUES ('%s', '%s') ON CONFLICT DO NOTHING;\n",
			categoryID(c), escapeSQL(c))
	}
	b.WriteString("\n-- 2. Productos\n")
	for _, r := range rows {
		p := r.product
		fmt.Fprintf(&b,
			"INSERT INTO products (id, category_id, name, description, image, quantity, price, discount, special_price)\n"+
				"SELECT '%s', id, '%s', '%s', '%s', %d, %s, %s, %s FROM categories WHERE name = '%s'\n"+
				"ON CONFLICT DO NOTHING;\n",
			p.ID, escapeSQL(p.Name), escapeSQL(p.Description), p.Image, p.Quantity,
			p.Price.String(), p.Discount.String(), p.SpecialPrice.String(), escapeSQL(r.category))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
