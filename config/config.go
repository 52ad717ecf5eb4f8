package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type Config struct {
	Store    StoreConfig
	Seed     SeedConfig
	LogLevel string
}

type StoreConfig struct {
	// Backend is StoreMemory or StoreSQLite. Both live only in memory.
	Backend      string
	MaxOpenConns int
}

type SeedConfig struct {
	Paths []string
}

// Load creates a new Config from environment variables with defaults.
// A .env file in the working directory is read first when present; real
// environment variables win over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Store: StoreConfig{
			Backend:      getEnv("LIBMAN_STORE", StoreMemory),
			MaxOpenConns: getEnvInt("LIBMAN_SQLITE_MAX_OPEN_CONNS", 1),
		},
		Seed: SeedConfig{
			Paths: getEnvList("LIBMAN_SEED"),
		},
		LogLevel: getEnv("LOG_LEVEL", "warn"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

// getEnvList splits a comma separated variable, dropping empty items
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
