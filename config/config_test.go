package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clubbot.toml")
	content := `
env = "prod"

[database]
driver = "postgres"
host = "db"
port = "5432"
database = "clubbot"
user = "bot"
password = "secret"

[economy]
reroll_fee = 50
lock_backend = "redis"
lock_ttl = "3s"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, int64(50), cfg.Economy.RerollFee)
	require.Equal(t, "redis", cfg.Economy.LockBackend)
	require.Equal(t, 3*time.Second, cfg.Economy.LockTTL.Duration)

	// Untouched keys keep their defaults.
	require.Equal(t, 3, cfg.Economy.DailyQuests)
	require.Equal(t, 10, cfg.Economy.PageSize)

	require.Equal(t,
		"host=db port=5432 user=bot password=secret dbname=clubbot sslmode=disable",
		cfg.Database.ConnectionString())
}

func TestLoad_InvalidPageSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clubbot.toml")
	require.NoError(t, os.WriteFile(path, []byte("[economy]\npage_size = 0\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}
