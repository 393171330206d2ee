package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// StorageConfig holds object storage settings for the S3-compatible backend.
// Driver selects the client implementation: "minio" (default) or "s3"
// (aws-sdk-go-v2).
type StorageConfig struct {
	Driver           string
	Endpoint         string
	Region           string
	AccessKey        string
	SecretKey        string
	Bucket           string
	UseSSL           bool
	PathStyle        bool
	PresignExpiryMin int
	ListPageSize     int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Database DatabaseConfig
	Storage  StorageConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"), // default only for non-sensitive value
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Storage: StorageConfig{
			Driver:           getEnv("STORAGE_DRIVER", "minio"),
			Endpoint:         getEnv("STORAGE_ENDPOINT", ""),
			Region:           getEnv("STORAGE_REGION", ""),
			AccessKey:        getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey:        getEnv("STORAGE_SECRET_KEY", ""),
			Bucket:           getEnv("STORAGE_BUCKET", ""),
			UseSSL:           getEnvBool("STORAGE_USE_SSL", false),
			PathStyle:        getEnvBool("STORAGE_PATH_STYLE", true),
			PresignExpiryMin: getEnvInt("STORAGE_PRESIGN_EXPIRY_MIN", 10),
			ListPageSize:     getEnvInt("STORAGE_LIST_PAGE_SIZE", 1000),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
