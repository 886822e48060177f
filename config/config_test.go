package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/minaorangina/deal/deck"
	utils "github.com/minaorangina/deal/internal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetAll(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DEAL_PORT", "DEAL_CATALOG", "DEAL_SEED", "DEAL_LOG_LEVEL", "DEAL_ALLOWED_ORIGINS"} {
		key := key
		if val, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, val) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		unsetAll(t)

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		utils.AssertNoError(t, err)

		assert.Equal(t, 8000, cfg.Port)
		assert.Equal(t, ":8000", cfg.Addr())
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
		assert.Zero(t, cfg.Seed)
		assert.Empty(t, cfg.CatalogPath)
	})

	t.Run("environment wins", func(t *testing.T) {
		unsetAll(t)
		os.Setenv("DEAL_PORT", "9001")
		os.Setenv("DEAL_SEED", "12")
		os.Setenv("DEAL_ALLOWED_ORIGINS", "http://a.example;http://b.example")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		utils.AssertNoError(t, err)

		assert.Equal(t, 9001, cfg.Port)
		assert.Equal(t, int64(12), cfg.Seed)
		assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
	})

	t.Run("reads an env file", func(t *testing.T) {
		unsetAll(t)
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("DEAL_LOG_LEVEL=debug\nDEAL_PORT=7000\n"), 0o600))

		cfg, err := Load(path)
		utils.AssertNoError(t, err)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 7000, cfg.Port)
	})

	t.Run("bad values", func(t *testing.T) {
		for key, value := range map[string]string{"DEAL_PORT": "eighty", "DEAL_SEED": "lucky"} {
			t.Log("Given", key, "is not a number")
			unsetAll(t)
			os.Setenv(key, value)

			t.Log("Then loading fails instead of falling back to zero")
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			utils.AssertErrored(t, err)
		}
	})
}

func TestConfigLogger(t *testing.T) {
	logger, err := Config{LogLevel: "warn"}.Logger()
	utils.AssertNoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	_, err = Config{LogLevel: "chatty"}.Logger()
	utils.AssertErrored(t, err)
}

func TestConfigCatalog(t *testing.T) {
	t.Run("built in", func(t *testing.T) {
		catalog, err := Config{}.Catalog()
		utils.AssertNoError(t, err)
		assert.Equal(t, len(deck.DefaultCatalog()), len(catalog))
	})

	t.Run("from a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cards.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cards:\n  - {id: money-1, name: 1M, category: money, value: 1, count: 4}\n"), 0o600))

		catalog, err := Config{CatalogPath: path}.Catalog()
		utils.AssertNoError(t, err)
		assert.Len(t, catalog, 4)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Config{CatalogPath: filepath.Join(t.TempDir(), "nope.yaml")}.Catalog()
		utils.AssertErrored(t, err)
	})
}
