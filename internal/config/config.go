package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ian-shakespeare/liblox/pkg/array"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "lox.yaml"

type Config struct {
	Log    Log    `yaml:"log"`
	REPL   REPL   `yaml:"repl"`
	Server Server `yaml:"server"`
}

type Log struct {
	Level   string `yaml:"level"`
	Journal bool   `yaml:"journal"`
}

type REPL struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
}

type Server struct {
	Port        string   `yaml:"port"`
	CorsOrigins []string `yaml:"cors_origins"`
	// MaxSource is an echo body limit such as "64K".
	MaxSource string `yaml:"max_source"`
}

func Default() *Config {
	return &Config{
		Log: Log{
			Level: "info",
		},
		REPL: REPL{
			Prompt: "> ",
		},
		Server: Server{
			Port:        "8080",
			CorsOrigins: []string{"*"},
			MaxSource:   "64K",
		},
	}
}

// Load layers the defaults, the YAML file at path, a .env file and finally the
// LOX_* environment variables. A missing file at DefaultPath is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}
	if err := cfg.loadFile(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || path != DefaultPath {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	loadDotEnv()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func loadDotEnv() {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = ".env"
	}
	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("Skipping .env ...", "path", envPath, "error", err)
	}
}

func (c *Config) applyEnv() {
	if level := os.Getenv("LOX_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if journal := os.Getenv("LOX_LOG_JOURNAL"); journal != "" {
		c.Log.Journal = journal == "true"
	}
	if prompt := os.Getenv("LOX_PROMPT"); prompt != "" {
		c.REPL.Prompt = prompt
	}
	if history := os.Getenv("LOX_HISTORY_FILE"); history != "" {
		c.REPL.HistoryFile = history
	}
	if port := os.Getenv("LOX_PORT"); port != "" {
		c.Server.Port = port
	}
	if limit := os.Getenv("LOX_MAX_SOURCE"); limit != "" {
		c.Server.MaxSource = limit
	}
	if origins := os.Getenv("LOX_CORS_ORIGINS"); origins != "" {
		c.Server.CorsOrigins = splitOrigins(origins)
	}
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	for i, origin := range parts {
		parts[i] = strings.TrimSpace(origin)
	}
	parts = array.Filter(parts, func(origin string) bool {
		return origin != ""
	})
	if len(parts) == 0 {
		return []string{"*"}
	}
	return parts
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	if err := validatePort(c.Server.Port); err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}

	if _, err := bytes.Parse(c.Server.MaxSource); err != nil {
		return fmt.Errorf("invalid max_source %q: %w", c.Server.MaxSource, err)
	}

	return nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
