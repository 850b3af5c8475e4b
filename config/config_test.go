package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_NAME", "techlympics")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, "127.0.0.1", cfg.DB.Host)
	assert.Equal(t, 3306, cfg.DB.Port)
	assert.Equal(t, 8, cfg.LookupConcurrency)
	assert.Equal(t, 200, cfg.LookupBatchSize)
	assert.Equal(t, "reports", cfg.Archive.Prefix)
	assert.False(t, cfg.Archive.Enabled())
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_DSN=user:pw@tcp(db:3306)/stats\nLOOKUP_CONCURRENCY=3\nLOG_FORMAT=JSON\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("DB_DSN")
		os.Unsetenv("LOOKUP_CONCURRENCY")
		os.Unsetenv("LOG_FORMAT")
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "user:pw@tcp(db:3306)/stats", cfg.DB.DSN)
	assert.Equal(t, 3, cfg.LookupConcurrency)
	assert.Equal(t, "json", cfg.LogFormat)
	_, ok := cfg.Logger().Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	cfg := &Config{
		DB:                DB{Port: 3306},
		HTTPAddr:          ":8000",
		LookupConcurrency: 0,
		LookupBatchSize:   5000,
		LogLevel:          "loud",
		LogFormat:         "text",
		Archive:           Archive{Bucket: "reports"},
	}

	err := cfg.Validate()
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 5)
}

func TestValidate_OK(t *testing.T) {
	cfg := &Config{
		DB:                DB{DSN: "root@tcp(localhost:3306)/stats", Port: 3306},
		HTTPAddr:          ":8000",
		LookupConcurrency: 4,
		LookupBatchSize:   100,
		LogLevel:          "debug",
		LogFormat:         "text",
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, logrus.DebugLevel, cfg.Logger().GetLevel())
}
