package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/infrastructure/storage"
)

func TestLocalImageStorage_Store(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	s := storage.NewLocalImageStorage(dir)

	name, err := s.Store(context.Background(), "Foto.PNG", strings.NewReader("contenido"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"), "conserva la extensión en minúsculas: %s", name)
	assert.NotEqual(t, "Foto.PNG", name)

	got, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "contenido", string(got))

	other, err := s.Store(context.Background(), "Foto.PNG", strings.NewReader("otro"))
	require.NoError(t, err)
	assert.NotEqual(t, name, other, "cada imagen recibe un nombre distinto")
}

func TestLocalImageStorage_ContextoCancelado(t *testing.T) {
	s := storage.NewLocalImageStorage(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Store(ctx, "a.jpg", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
