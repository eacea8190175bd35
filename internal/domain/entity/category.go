package entity

import "time"

// Category agrupa productos del catálogo. Name es único en todo el catálogo (comparación exacta).
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
