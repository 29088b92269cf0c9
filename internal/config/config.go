package config

import (
	"fmt"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type Config struct {
	AppEnv   string
	LogLevel string
	HTTPPort int

	// StoreDriver selects the stage: "memory" or "postgres".
	StoreDriver string

	DBHost     string
	DBPort     string
	DBUsername string
	DBPassword string
	DBDatabase string
	DBSchema   string
}

func Load() Config {
	return Config{
		AppEnv:      getEnv("SHOP_ENV", "dev"),
		LogLevel:    getEnv("SHOP_LOG_LEVEL", "info"),
		HTTPPort:    getEnvInt("SHOP_HTTP_PORT", 8080),
		StoreDriver: getEnv("SHOP_STORE_DRIVER", DriverMemory),
		DBHost:      getEnv("SHOP_DB_HOST", "localhost"),
		DBPort:      getEnv("SHOP_DB_PORT", "5432"),
		DBUsername:  getEnv("SHOP_DB_USERNAME", "postgres"),
		DBPassword:  getEnv("SHOP_DB_PASSWORD", "postgres"),
		DBDatabase:  getEnv("SHOP_DB_DATABASE", "shoplite"),
		DBSchema:    getEnv("SHOP_DB_SCHEMA", "public"),
	}
}

// DSN builds the postgres connection string for the pgx stdlib driver.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		c.DBUsername, c.DBPassword, c.DBHost, c.DBPort, c.DBDatabase, c.DBSchema,
	)
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
