package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	GRPCPort int
	HTTPPort int

	// StoreDriver selects the document store: memory, postgres or firestore.
	StoreDriver string
	Postgres    PostgresConfig
	Firestore   FirestoreConfig

	StorefrontAddr string
	JWTSecret      string
	CORSOrigins    []string
	SeedFile       string

	DeductionRetries     int
	DeductionConcurrency int
}

type PostgresConfig struct {
	Host    string
	Port    int
	User    string
	Pass    string
	DB      string
	SSLMode string
}

type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		HTTPPort: getEnvInt("HTTP_PORT", 8080),
		GRPCPort: getEnvInt("GRPC_PORT", 8081),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", "memory")),
		Postgres: PostgresConfig{
			Host:    getEnv("POSTGRES_HOST", "localhost"),
			Port:    getEnvInt("POSTGRES_PORT", 5432),
			User:    getEnv("POSTGRES_USER", "bakery"),
			Pass:    getEnv("POSTGRES_PASSWORD", "bakerypassword"),
			DB:      getEnv("POSTGRES_DB", "bakery_db"),
			SSLMode: getEnv("POSTGRES_SSLMODE", "disable"),
		},
		Firestore: FirestoreConfig{
			ProjectID:       getEnv("FIRESTORE_PROJECT_ID", ""),
			CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		},

		StorefrontAddr: getEnv("STOREFRONT_ADDR", "localhost:8081"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret"),
		CORSOrigins:    getEnvList("CORS_ORIGINS", []string{"http://localhost:5173"}),
		SeedFile:       getEnv("SEED_FILE", "seed/catalog.yaml"),

		DeductionRetries:     getEnvInt("DEDUCTION_RETRIES", 3),
		DeductionConcurrency: getEnvInt("DEDUCTION_CONCURRENCY", 4),
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

// getEnvList splits a comma separated value, dropping empty entries.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
