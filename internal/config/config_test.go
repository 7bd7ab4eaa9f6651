package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "STORAGE_DRIVER", "MAX_UPLOAD_MB", "AUTO_MIGRATE", "READ_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, StorageLocal, cfg.StorageDriver)
	assert.Equal(t, "/images", cfg.UploadURLPrefix)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "PGX")
	t.Setenv("DB_DSN", "postgres://u:p@localhost/pets")
	t.Setenv("STORAGE_DRIVER", "s3")
	t.Setenv("MAX_UPLOAD_MB", "2")
	t.Setenv("SEED_ON_START", "true")
	t.Setenv("WRITE_TIMEOUT", "30s")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, DriverPgx, cfg.DBDriver)
	assert.Equal(t, "postgres://u:p@localhost/pets", cfg.DBDSN)
	assert.Equal(t, StorageS3, cfg.StorageDriver)
	assert.Equal(t, int64(2<<20), cfg.MaxUploadBytes)
	assert.True(t, cfg.SeedOnStart)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("STORAGE_DRIVER", "ftp")
	t.Setenv("MAX_UPLOAD_MB", "lots")
	t.Setenv("AUTO_MIGRATE", "maybe")
	t.Setenv("READ_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, StorageLocal, cfg.StorageDriver)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
}
