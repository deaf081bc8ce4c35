package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	lookupEnv = os.LookupEnv
	godotenvLoad = godotenv.Load
}

func noEnv(t *testing.T, env map[string]string) {
	t.Helper()
	t.Cleanup(restoreGlobals)
	lookupEnv = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	godotenvLoad = func(...string) error { return os.ErrNotExist }
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	noEnv(t, nil)
	cfg, err := Load(newFlags(t), "")
	require.NoError(t, err)
	require.Equal(t, Defaults(), *cfg)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "userdesk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"http-addr: \":9000\"\nlog-level: debug\nworker-count: 3\nsession-ttl: 5m\n"), 0o600))

	noEnv(t, map[string]string{
		"DATABASE_URL": "postgres://env",
		"LOG_LEVEL":    "warn",
		"REDIS_DB":     "2",
	})

	cfg, err := Load(newFlags(t, "--log-level=error"), path)
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.HTTPAddr)
	require.Equal(t, 3, cfg.WorkerCount)
	require.Equal(t, 5*time.Minute, cfg.SessionTTL)
	require.Equal(t, "postgres://env", cfg.DatabaseURL)
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, "error", cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	noEnv(t, nil)
	_, err := Load(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	godotenvLoad = func(...string) error { return errors.New("bad .env") }
	_, err = Load(nil, "")
	require.Error(t, err)

	noEnv(t, map[string]string{"WORKER_COUNT": "many"})
	_, err = Load(nil, "")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	require.Error(t, cfg.ValidateMigrate())
	require.Error(t, cfg.ValidateServe())

	cfg.DatabaseURL = "postgres://x"
	require.NoError(t, cfg.ValidateMigrate())
	err := cfg.ValidateServe()
	require.ErrorContains(t, err, "SESSION_SECRET")

	cfg.SessionSecret = "s"
	require.NoError(t, cfg.ValidateServe())

	cfg.WorkerCount = 0
	cfg.RedisAddr = ""
	err = cfg.ValidateServe()
	require.ErrorContains(t, err, "WORKER_COUNT")
	require.ErrorContains(t, err, "REDIS_ADDR")
}
