package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppEnv           = "dev"
	defaultHTTPAddr         = ":8000"
	defaultDatabaseURL      = "miswa.db"
	defaultDBName           = "miswa"
	defaultJWTSecret        = "change-me-jwt-secret"
	defaultJWTAccessTTL     = "24h"
	defaultAdminUsername    = "admin"
	defaultAdminPassword    = "admin123"
	defaultUploadsDir       = "./uploads"
	defaultUploadsURLPrefix = "/api/uploads"
	defaultMaxUploadSize    = "10485760"
	defaultCORSOrigins      = "*"
	defaultLogLevel         = "info"
	defaultStorageDriver    = StorageLocal
	defaultS3Region         = "us-east-1"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// Config is the process-wide configuration. It is loaded once at start and never reloaded.
type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string
	DBName      string

	JWTSecret    string
	JWTAccessTTL time.Duration

	AdminUsername string
	AdminPassword string

	UploadsDir       string
	UploadsURLPrefix string
	MaxUploadSize    int64

	CORSOrigins []string

	LogLevel string
	LogDev   bool

	StorageDriver string
	S3            S3Config
}

// S3Config holds settings for the S3-compatible upload backend.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// Load reads an optional .env file and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = defaultAppEnv
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.DBName = strings.TrimSpace(getEnv("DB_NAME", defaultDBName))

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.AdminUsername = strings.TrimSpace(getEnv("ADMIN_USERNAME", defaultAdminUsername))
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", defaultAdminPassword)

	cfg.UploadsDir = strings.TrimSpace(getEnv("UPLOADS_DIR", defaultUploadsDir))
	cfg.UploadsURLPrefix = strings.TrimRight(strings.TrimSpace(getEnv("UPLOADS_URL_PREFIX", defaultUploadsURLPrefix)), "/")
	cfg.MaxUploadSize, err = parseInt64Env("MAX_UPLOAD_SIZE", defaultMaxUploadSize)
	if err != nil {
		return nil, err
	}

	cfg.CORSOrigins = splitList(getEnv("CORS_ORIGINS", defaultCORSOrigins))

	cfg.LogDev = parseBoolEnv("LOG_DEV", "false")
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel)))

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(getEnv("STORAGE_DRIVER", defaultStorageDriver)))
	cfg.S3 = S3Config{
		Bucket:    strings.TrimSpace(os.Getenv("S3_BUCKET")),
		Region:    strings.TrimSpace(getEnv("S3_REGION", defaultS3Region)),
		Endpoint:  strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		AccessKey: strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
		SecretKey: strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsProd reports whether the config describes a production-like environment.
func (c *Config) IsProd() bool {
	return isProdLike(c.AppEnv)
}

// UsesDefaultAdminPassword is true when the bootstrap password was not overridden.
func (c *Config) UsesDefaultAdminPassword() bool {
	return c.AdminPassword == defaultAdminPassword
}

func validateConfig(cfg *Config) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be > 0")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must not be empty")
	}
	if !strings.HasPrefix(cfg.UploadsURLPrefix, "/") {
		return fmt.Errorf("UPLOADS_URL_PREFIX must start with /")
	}

	switch cfg.StorageDriver {
	case StorageLocal:
		if cfg.UploadsDir == "" {
			return fmt.Errorf("UPLOADS_DIR must not be empty")
		}
	case StorageS3:
		if cfg.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when STORAGE_DRIVER=s3")
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of: local, s3")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	} else if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseInt64Env(name, fallback string) (int64, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
