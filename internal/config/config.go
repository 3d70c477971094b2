package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// EnvURI names the variable holding the connection string
	EnvURI = "MONGODB_URI"
	// EnvTimeout optionally overrides the server selection timeout (Go duration syntax)
	EnvTimeout = "MONGOPING_SERVER_SELECTION_TIMEOUT"
	// EnvLogLevel sets the log level when --log-level is not given
	EnvLogLevel = "MONGOPING_LOG_LEVEL"

	DefaultServerSelectionTimeout = 5 * time.Second
	DefaultAppName                = "mongoping"
	DefaultEnvFile                = ".env"
)

// ErrMissingURI is returned when no connection string can be derived
var ErrMissingURI = errors.New(EnvURI + " is not set")

// Config represents the application configuration
type Config struct {
	URI                    string        `yaml:"uri,omitempty"`
	ServerSelectionTimeout time.Duration `yaml:"server_selection_timeout"`
	AppName                string        `yaml:"app_name,omitempty"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		ServerSelectionTimeout: DefaultServerSelectionTimeout,
		AppName:                DefaultAppName,
	}
}

// FromEnv overlays environment values onto cfg.
// The URI must end up non-empty, either from the file or from MONGODB_URI.
func FromEnv(cfg *Config) error {
	if uri, ok := os.LookupEnv(EnvURI); ok {
		cfg.URI = uri
	}

	if raw := strings.TrimSpace(os.Getenv(EnvTimeout)); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTimeout, raw, err)
		}
		if err := ValidateTimeout(d); err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		cfg.ServerSelectionTimeout = d
	}

	if cfg.URI == "" {
		return ErrMissingURI
	}

	return nil
}

// LoadDotEnv loads variables from a dotenv file without overriding ones
// already present in the process environment. A missing file is only an
// error when required is set.
func LoadDotEnv(path string, required bool) error {
	if path == "" {
		path = DefaultEnvFile
	}

	if !Exists(path) {
		if required {
			return fmt.Errorf("env file not found: %s", path)
		}
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	return nil
}

// ValidateTimeout rejects timeouts the driver would replace with its own default
func ValidateTimeout(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("server selection timeout must be positive, got %s", d)
	}
	return nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if err := ValidateTimeout(c.ServerSelectionTimeout); err != nil {
		return err
	}
	if !strings.HasPrefix(c.URI, "mongodb://") && !strings.HasPrefix(c.URI, "mongodb+srv://") {
		return fmt.Errorf("URI must start with mongodb:// or mongodb+srv://")
	}
	return nil
}

// Load loads configuration from file, starting from the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := ValidateTimeout(config.ServerSelectionTimeout); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

// Save saves configuration to file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// The URI may embed credentials
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mongoping/config.yaml"
	}
	return filepath.Join(home, ".mongoping", "config.yaml")
}

// Exists checks if a file exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
