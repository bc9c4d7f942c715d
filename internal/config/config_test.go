package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ENV", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_ACCESS_TTL", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, 24*time.Hour, cfg.JWTAccessTTL)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.True(t, cfg.UsesDefaultAdminPassword())
	assert.Equal(t, "/api/uploads", cfg.UploadsURLPrefix)
	assert.Equal(t, StorageLocal, cfg.StorageDriver)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("JWT_ACCESS_TTL", "2h")
	t.Setenv("ADMIN_USERNAME", "ops")
	t.Setenv("ADMIN_PASSWORD", "s3cret-pass")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("UPLOADS_URL_PREFIX", "/files/")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, cfg.JWTAccessTTL)
	assert.Equal(t, "ops", cfg.AdminUsername)
	assert.False(t, cfg.UsesDefaultAdminPassword())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "/files", cfg.UploadsURLPrefix)
}

func TestFromEnv_ProdRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := FromEnv()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"bad ttl":        {"JWT_ACCESS_TTL", "soon"},
		"negative ttl":   {"JWT_ACCESS_TTL", "-1h"},
		"bad size":       {"MAX_UPLOAD_SIZE", "big"},
		"unknown driver": {"STORAGE_DRIVER", "ftp"},
		"s3 w/o bucket":  {"STORAGE_DRIVER", "s3"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("S3_BUCKET", "")
			t.Setenv(kv[0], kv[1])
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
