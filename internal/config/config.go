package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverPgx    = "pgx"

	StorageLocal = "local"
	StorageS3    = "s3"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// HTTP server
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Database: memory | sqlite | pgx
	DBDriver    string
	DBDSN       string
	AutoMigrate bool
	SeedOnStart bool

	// Logging
	LogLevel  string
	LogFormat string
	SentryDSN string

	// Uploaded images
	StorageDriver   string
	UploadDir       string
	UploadURLPrefix string
	MaxUploadBytes  int64

	// S3-compatible storage (only when StorageDriver=s3)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string
}

// Load lee .env (si existe) y luego variables de entorno.
// Valores inválidos caen al default con un warning.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := &Config{
		AppName: envString("APP_NAME", "pet-adoption"),
		AppEnv:  envString("APP_ENV", "development"),
		Port:    envString("PORT", "8080"),

		ReadTimeout:  envDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout: envDuration("WRITE_TIMEOUT", 10*time.Second),

		DBDriver:    strings.ToLower(envString("DB_DRIVER", DriverSQLite)),
		DBDSN:       envString("DB_DSN", "file:./data/pets.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_time_format=sqlite"),
		AutoMigrate: envBool("AUTO_MIGRATE", true),
		SeedOnStart: envBool("SEED_ON_START", false),

		LogLevel:  envString("LOG_LEVEL", "info"),
		LogFormat: envString("LOG_FORMAT", "text"),
		SentryDSN: envString("SENTRY_DSN", ""),

		StorageDriver:   strings.ToLower(envString("STORAGE_DRIVER", StorageLocal)),
		UploadDir:       envString("UPLOAD_DIR", "./public/images"),
		UploadURLPrefix: envString("UPLOAD_URL_PREFIX", "/images"),
		MaxUploadBytes:  int64(envInt("MAX_UPLOAD_MB", 10)) << 20,

		S3Region:    envString("S3_REGION", "us-east-1"),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""),
	}

	switch cfg.DBDriver {
	case DriverMemory, DriverSQLite, DriverPgx:
	default:
		slog.Warn("config unknown DB_DRIVER, using sqlite", "value", cfg.DBDriver)
		cfg.DBDriver = DriverSQLite
	}

	switch cfg.StorageDriver {
	case StorageLocal, StorageS3:
	default:
		slog.Warn("config unknown STORAGE_DRIVER, using local", "value", cfg.StorageDriver)
		cfg.StorageDriver = StorageLocal
	}

	return cfg
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func envString(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}
