package config

import (
	"os"
)

type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type Config struct {
	Port               string
	DatabaseURL        string
	CORSOrigins        string
	UploadDir          string
	StorageDriver      string // "local" or "s3"
	TurnstileSecretKey string
	S3                 S3Config
}

func Load() *Config {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		CORSOrigins:        getEnv("CORS_ORIGINS", "http://localhost:5173"),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		StorageDriver:      getEnv("STORAGE_DRIVER", "local"),
		TurnstileSecretKey: os.Getenv("TURNSTILE_SECRET_KEY"),
	}

	cfg.S3.Endpoint = os.Getenv("S3_ENDPOINT")
	cfg.S3.Region = getEnv("S3_REGION", "auto")
	cfg.S3.AccessKeyID = os.Getenv("S3_ACCESS_KEY_ID")
	cfg.S3.SecretAccessKey = os.Getenv("S3_SECRET_ACCESS_KEY")
	cfg.S3.Bucket = os.Getenv("S3_BUCKET")
	cfg.S3.PublicURL = os.Getenv("S3_PUBLIC_URL")

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
