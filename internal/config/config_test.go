package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ian-shakespeare/liblox/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Parse([]byte(`
log:
  level: debug
repl:
  prompt: "lox> "
  history_file: /tmp/lox_history
server:
  port: "9000"
  cors_origins: ["http://localhost:3000"]
`))
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.False(t, cfg.Log.Journal)
		assert.Equal(t, "lox> ", cfg.REPL.Prompt)
		assert.Equal(t, "/tmp/lox_history", cfg.REPL.HistoryFile)
		assert.Equal(t, "9000", cfg.Server.Port)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CorsOrigins)
		assert.Equal(t, "64K", cfg.Server.MaxSource)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	invalid := []struct {
		name  string
		value string
	}{
		{"level", "log:\n  level: loud\n"},
		{"portText", "server:\n  port: http\n"},
		{"portRange", "server:\n  port: \"70000\"\n"},
		{"maxSourceEmpty", "server:\n  max_source: \"\"\n"},
		{"maxSourceUnit", "server:\n  max_source: lots\n"},
		{"yaml", "log: [\n"},
	}

	for _, input := range invalid {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.Parse([]byte(input.value))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("missingDefault", func(t *testing.T) {
		t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))

		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, "> ", cfg.REPL.Prompt)
	})

	t.Run("missingExplicit", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("layers", func(t *testing.T) {
		path := writeFile(t, "lox.yaml", "repl:\n  prompt: \"file> \"\nserver:\n  port: \"9000\"\n")
		envPath := writeFile(t, ".env", "LOX_HISTORY_FILE=/tmp/from_dotenv\n")

		t.Setenv("ENV_PATH", envPath)
		t.Setenv("LOX_PORT", "9090")
		t.Setenv("LOX_LOG_LEVEL", "warn")
		t.Setenv("LOX_CORS_ORIGINS", " http://a.test, ,http://b.test ")
		t.Cleanup(func() { os.Unsetenv("LOX_HISTORY_FILE") })

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "file> ", cfg.REPL.Prompt)
		assert.Equal(t, "/tmp/from_dotenv", cfg.REPL.HistoryFile)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CorsOrigins)
	})

	t.Run("invalidEnv", func(t *testing.T) {
		t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
		t.Setenv("LOX_PORT", "0")

		cfg, err := config.Load("")
		assert.ErrorContains(t, err, "port must be between 1 and 65535")
		assert.Nil(t, cfg)
	})
}
