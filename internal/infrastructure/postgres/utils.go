package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// Columnas permitidas en ORDER BY por propiedad expuesta. Nunca se interpola texto del cliente.
var (
	categorySortColumns = map[string]string{
		"categoryId":   "id",
		"categoryName": "name",
	}
	productSortColumns = map[string]string{
		"productId":    "id",
		"productName":  "name",
		"price":        "price",
		"discount":     "discount",
		"quantity":     "quantity",
		"specialPrice": "special_price",
	}
)

// orderBy construye "col DIR" a partir de la propiedad pedida. prefix se antepone tal cual (p.ej. "price ASC, ").
func orderBy(q repository.PageQuery, columns map[string]string, prefix string) (string, error) {
	col, ok := columns[q.SortBy]
	if !ok {
		return "", domain.InvalidInput("no se puede ordenar por %q", q.SortBy)
	}
	dir := "DESC"
	if q.Direction == repository.SortAsc {
		dir = "ASC"
	}
	// id como desempate para que la paginación sea estable.
	clause := fmt.Sprintf("%s%s %s", prefix, col, dir)
	if col != "id" {
		clause += ", id " + dir
	}
	return clause, nil
}

// likeContains escapa los comodines de LIKE y envuelve el patrón en %...%.
func likeContains(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// isUUID evita enviar a PostgreSQL identificadores que la columna UUID rechazaría con error de sintaxis.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
