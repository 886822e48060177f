package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/minaorangina/deal/deck"
	"github.com/sirupsen/logrus"
)

// Config is read from the environment, after any .env file has been loaded
type Config struct {
	Port           int      `env:"DEAL_PORT,default=8000,strict"`
	CatalogPath    string   `env:"DEAL_CATALOG"`
	Seed           int64    `env:"DEAL_SEED,strict"`
	LogLevel       string   `env:"DEAL_LOG_LEVEL,default=info"`
	AllowedOrigins []string `env:"DEAL_ALLOWED_ORIGINS,default=*"`
}

// Load reads the given env files (.env when none are named) and decodes
// the environment. Missing env files are not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading env file: %w", err)
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decoding environment: %w", err)
	}

	return cfg, nil
}

// Addr is the address the web server listens on
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Logger builds a logger at the configured level
func (c Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return logger, nil
}

// Catalog loads the configured catalog, or the built-in one
func (c Config) Catalog() (deck.Catalog, error) {
	if c.CatalogPath == "" {
		return deck.DefaultCatalog(), nil
	}
	return deck.LoadCatalogFile(c.CatalogPath)
}
