package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var serverKeys = []string{
	"HOST", "PORT", "SERVICE_NAME", "READ_TIMEOUT", "WRITE_TIMEOUT", "KEEP_ALIVE", "BUFFER_SIZE",
	"ACCEPT_RATE", "ACCEPT_BURST", "METRICS_ADDR", "SHUTDOWN_WAIT", "LENGTH", "ZEROS",
	"POW_ALGORITHM", "ARGON2_TIME", "ARGON2_MEMORY", "ARGON2_THREADS", "QUOTES_FILE",
	"LOG_LEVEL", "LOG_ENCODING", "LOG_FILE", "LOG_MAX_SIZE_MB", "LOG_MAX_BACKUPS", "LOG_MAX_AGE_DAYS",
	"SERVER_ADDR", "CONNECT_TIMEOUT", "REQUEST_TIMEOUT", "SOLVE_TIMEOUT", "RETRY_ATTEMPTS", "RETRY_DELAY",
}

// clearEnv unsets every key the configs read and restores the previous values afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range serverKeys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
		} else {
			t.Cleanup(func() { os.Unsetenv(k) })
		}
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadServerConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("LENGTH", "10")
	t.Setenv("ZEROS", "4")

	cfg, err := LoadServerConfig("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	assert.Equal(t, "powgate", cfg.Server.Name)
	assert.Equal(t, 1024, cfg.Server.BufferSize)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownWait)
	assert.Zero(t, cfg.Server.AcceptRate)
	assert.Empty(t, cfg.Server.MetricsAddr)
	assert.Equal(t, 10, cfg.Pow.Length)
	assert.Equal(t, 4, cfg.Pow.Zeros)
	assert.Equal(t, "sha256", cfg.Pow.Algorithm.Name)
	assert.Equal(t, uint32(65536), cfg.Pow.Algorithm.Argon2Memory)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
}

func TestLoadServerConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LENGTH", "16")
	t.Setenv("ZEROS", "3")
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9000")
	t.Setenv("READ_TIMEOUT", "1500ms")
	t.Setenv("POW_ALGORITHM", "argon2id")
	t.Setenv("ARGON2_THREADS", "2")
	t.Setenv("ACCEPT_RATE", "2.5")

	cfg, err := LoadServerConfig("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr())
	assert.Equal(t, 1500*time.Millisecond, cfg.Server.ReadTimeout)
	assert.Equal(t, "argon2id", cfg.Pow.Algorithm.Name)
	assert.Equal(t, uint8(2), cfg.Pow.Algorithm.Argon2Params().Threads)
	assert.InDelta(t, 2.5, cfg.Server.AcceptRate, 1e-9)
}

func TestLoadServerConfig_MissingRequired(t *testing.T) {
	clearEnv(t)
	t.Setenv("ZEROS", "4")

	_, err := LoadServerConfig("")
	require.Error(t, err)
	assert.Contains(t, strings.ToLower(err.Error()), "length")
}

func TestLoadServerConfig_NonNumeric(t *testing.T) {
	clearEnv(t)
	t.Setenv("LENGTH", "ten")
	t.Setenv("ZEROS", "4")

	_, err := LoadServerConfig("")
	require.Error(t, err)
}

func TestLoadServerConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"zero length", map[string]string{"LENGTH": "0", "ZEROS": "4"}},
		{"negative zeros", map[string]string{"LENGTH": "10", "ZEROS": "-1"}},
		{"unknown algorithm", map[string]string{"LENGTH": "10", "ZEROS": "4", "POW_ALGORITHM": "md5"}},
		{"zero buffer", map[string]string{"LENGTH": "10", "ZEROS": "4", "BUFFER_SIZE": "0"}},
		{"negative timeout", map[string]string{"LENGTH": "10", "ZEROS": "4", "READ_TIMEOUT": "-1s"}},
		{"rate without burst", map[string]string{"LENGTH": "10", "ZEROS": "4", "ACCEPT_RATE": "5", "ACCEPT_BURST": "0"}},
		{"bad log level", map[string]string{"LENGTH": "10", "ZEROS": "4", "LOG_LEVEL": "verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadServerConfig("")
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadServerConfig_YAMLFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("ZEROS", "6") // environment wins over the file

	path := filepath.Join(t.TempDir(), "powgate.yaml")
	content := `
server:
  port: "7000"
  buffer_size: 512
pow:
  length: 20
  zeros: 2
  algorithm:
    name: blake3
log:
  level: debug
  encoding: console
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Addr())
	assert.Equal(t, 512, cfg.Server.BufferSize)
	assert.Equal(t, 20, cfg.Pow.Length)
	assert.Equal(t, 6, cfg.Pow.Zeros)
	assert.Equal(t, "blake3", cfg.Pow.Algorithm.Name)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadServerConfig_DotEnvInWorkingDir(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9100") // environment wins over .env

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DotEnvFile), []byte("LENGTH=12\nZEROS=5\nPORT=9000\n"), 0o600))
	t.Chdir(dir)

	cfg, err := LoadServerConfig("")
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Pow.Length)
	assert.Equal(t, 5, cfg.Pow.Zeros)
	assert.Equal(t, "127.0.0.1:9100", cfg.Server.Addr())
}

func TestLoadServerConfig_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := LoadServerConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadClientConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadClientConfig("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Client.ServerAddr)
	assert.Equal(t, 3, cfg.Client.RetryAttempts)
	assert.Equal(t, time.Minute, cfg.Client.SolveTimeout)
	assert.Equal(t, "sha256", cfg.Algorithm.Name)
}

func TestLoadClientConfig_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("RETRY_ATTEMPTS", "0")

	_, err := LoadClientConfig("")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestUsage(t *testing.T) {
	text := Usage(&ServerConfig{})
	assert.Contains(t, text, "LENGTH")
	assert.Contains(t, text, "POW_ALGORITHM")
}
