package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "catalog-api", cfg.App.Name)
	assert.Equal(t, "images/", cfg.Storage.ImageDir)
	assert.Equal(t, "/images", cfg.Storage.ImageBaseURL)
	assert.Equal(t, 50, cfg.Paging.DefaultSize)
	assert.Equal(t, 100, cfg.Paging.MaxSize)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("PAGE_SIZE_DEFAULT", 10)
	v.Set("IMAGE_BASE_URL", "https://cdn.example.com/img/")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 10, cfg.Paging.DefaultSize)
	assert.Equal(t, "https://cdn.example.com/img", cfg.Storage.ImageBaseURL)
}

func TestFromViper_PaginacionInvalida(t *testing.T) {
	v := viper.New()
	v.Set("PAGE_SIZE_DEFAULT", 200)
	v.Set("PAGE_SIZE_MAX", 100)

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "catalog", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/catalog?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
