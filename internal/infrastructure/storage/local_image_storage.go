// Package storage guarda las imágenes de producto en disco local.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/catalog-api/internal/application/ports"
)

var _ ports.ImageStorage = (*LocalImageStorage)(nil)

// LocalImageStorage escribe cada imagen en dir con un nombre <uuid><ext> para evitar colisiones.
type LocalImageStorage struct {
	dir string
}

// NewLocalImageStorage construye el adaptador; el directorio se crea en el primer Store si no existe.
func NewLocalImageStorage(dir string) *LocalImageStorage {
	return &LocalImageStorage{dir: dir}
}

// Dir devuelve el directorio destino (para servir las imágenes como estáticos).
func (s *LocalImageStorage) Dir() string { return s.dir }

// Store copia data a disco y devuelve el nombre de archivo generado.
func (s *LocalImageStorage) Store(ctx context.Context, originalName string, data io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de imágenes: %w", err)
	}

	fileName := uuid.New().String() + strings.ToLower(filepath.Ext(originalName))
	dst := filepath.Join(s.dir, fileName)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("crear imagen: %w", err)
	}
	if _, err := io.Copy(f, data); err != nil {
		f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("escribir imagen: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("cerrar imagen: %w", err)
	}
	return fileName, nil
}
