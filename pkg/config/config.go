package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	CatalogURL string
	InvoiceDir string
}

func Load() Config {
	// A missing .env is fine; explicit env vars win either way.
	_ = godotenv.Load()

	return Config{
		AppEnv:     getEnv("APP_ENV", "dev"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		HTTPPort:   getEnvInt("HTTP_PORT", 8080),
		CatalogURL: getEnv("CATALOG_URL", "https://raw.githubusercontent.com/Fernandojoseee/carros/refs/heads/main/data.json"),
		InvoiceDir: getEnv("INVOICE_DIR", "invoices"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
