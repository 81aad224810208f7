// Package config loads the quill CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const maxWalkDepth = 25

// Config represents the quill configuration from quill.yaml.
type Config struct {
	// Dialect renders statements when no --dialect flag is given.
	Dialect string `mapstructure:"dialect" json:"dialect"`

	// Schema is an optional YAML table listing used to validate statements.
	Schema string `mapstructure:"schema" json:"schema"`

	Database DatabaseConfig `mapstructure:"database" json:"database"`
	Log      LogConfig      `mapstructure:"log" json:"log"`
}

// DatabaseConfig holds the connection used by quill exec.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" json:"driver"`
	DSN    string `mapstructure:"dsn" json:"dsn"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" json:"level"`
}

// Load discovers and loads configuration with precedence
// env > config file > defaults. Flags are applied by the caller.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func Load(explicitPath string) (*Config, string, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("QUILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := findConfigFile(explicitPath)
	if err != nil {
		return nil, "", err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, path, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, path, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, path, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dialect", "")
	v.SetDefault("schema", "")
	v.SetDefault("database.driver", "")
	v.SetDefault("database.dsn", "")
	v.SetDefault("log.level", "info")
}

// findConfigFile validates explicitPath, or walks up from the working
// directory looking for quill.yaml or quill.yml, stopping at a .git entry or
// after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		for _, name := range []string{"quill.yaml", "quill.yml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil
}

// DialectName returns the configured dialect, falling back to the database
// driver name and then to mysql.
func (c *Config) DialectName() string {
	switch {
	case c.Dialect != "":
		return c.Dialect
	case c.Database.Driver != "":
		return c.Database.Driver
	default:
		return "mysql"
	}
}

// Validate checks that the configured log level is known.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	return nil
}

// RequireDatabase returns an error unless both driver and DSN are set.
func (c *Config) RequireDatabase() error {
	if c.Database.Driver == "" {
		return fmt.Errorf("database.driver is required (set it in quill.yaml or QUILL_DATABASE_DRIVER)")
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required (set it in quill.yaml or QUILL_DATABASE_DSN)")
	}
	return nil
}
