package ports

import (
	"context"
	"io"
)

// ImageStorage define el puerto de salida para guardar imágenes de producto.
// Store persiste el contenido y devuelve el nombre de archivo asignado; el nombre original
// solo aporta la extensión.
type ImageStorage interface {
	Store(ctx context.Context, originalName string, data io.Reader) (string, error)
}
