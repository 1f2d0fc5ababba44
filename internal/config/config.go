package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageProviderLocal = "local"
	StorageProviderGCS   = "gcs"
)

type Config struct {
	Env        string
	ServerPort string

	DBDriver string
	DBDSN    string

	JWTSecret string
	TokenTTL  time.Duration

	AdminUsername string
	AdminPassword string

	StorageProvider string
	UploadDir       string
	GCSBucket       string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Env:             getenv("APP_ENV", "development"),
		ServerPort:      getenv("SERVER_PORT", "8080"),
		DBDriver:        getenv("DB_DRIVER", "sqlite"),
		DBDSN:           os.Getenv("DB_DSN"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TokenTTL:        tokenTTL(),
		AdminUsername:   getenv("ADMIN_USERNAME", "admin"),
		AdminPassword:   getenv("ADMIN_PASSWORD", "admin123"),
		StorageProvider: getenv("STORAGE_PROVIDER", StorageProviderLocal),
		UploadDir:       getenv("UPLOAD_DIR", "uploads"),
		GCSBucket:       os.Getenv("GCS_BUCKET"),
	}

	if cfg.DBDSN == "" {
		if cfg.DBDriver != "sqlite" {
			log.Fatal("DB_DSN is not set")
		}
		cfg.DBDSN = "data/garage.db"
	}

	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			log.Fatal("JWT_SECRET is not set")
		}
		cfg.JWTSecret = "dev-secret-do-not-use-in-production"
		log.Println("JWT_SECRET is not set, using insecure development default")
	}

	if cfg.StorageProvider == StorageProviderGCS && cfg.GCSBucket == "" {
		log.Fatal("GCS_BUCKET is required when STORAGE_PROVIDER=gcs")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func tokenTTL() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("TOKEN_TTL_HOURS"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}
