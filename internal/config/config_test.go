package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()

	for _, name := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "HTTP_PORT"} {
		t.Setenv(name, "")
	}
}

const minimalConfig = `
[database]
host = "db.local"
dbname = "tours"
`

func TestLoadAppliesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 1, cfg.Booking.MaxConflictRetries)
	assert.Equal(t, "host=db.local port=5432 user= password= dbname=tours sslmode=disable", cfg.Database.DSN())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "postgres")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{
			name:    "missing host",
			content: "[database]\ndbname = \"tours\"\n",
		},
		{
			name:    "idle above open",
			content: minimalConfig + "max_open_conns = 2\nmax_idle_conns = 4\n",
		},
		{
			name:    "negative retries",
			content: minimalConfig + "[booking]\nmax_conflict_retries = -1\n",
		},
		{
			name:    "port out of range",
			content: minimalConfig + "[server]\nhttp_port = 70000\n",
		},
		{
			name:    "non numeric env port",
			content: minimalConfig,
			env:     map[string]string{"DB_PORT": "five"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(writeConfig(t, tt.content))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestRepositoryConfigIsValid(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join("..", "..", "config.toml"))
	require.NoError(t, err)
	assert.True(t, cfg.Metrics.Enabled)
}
