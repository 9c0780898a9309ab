package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/syssam/reloader/dialect"
)

const maxWalkDepth = 25

// Config represents the reloader configuration from reloader.yaml.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`

	// Debug logs every executed statement.
	Debug bool `mapstructure:"debug"`
	// Stats collects execution statistics and reports slow statements.
	Stats         bool          `mapstructure:"stats"`
	SlowThreshold time.Duration `mapstructure:"slow_threshold"`
}

// DatabaseConfig holds storage connection settings.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	Source string `mapstructure:"source"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults. Flags are applied by the caller.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("RELOADER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, configPath, err
	}
	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", dialect.SQLite)
	v.SetDefault("database.source", "reloading.db")
	v.SetDefault("debug", false)
	v.SetDefault("stats", false)
	v.SetDefault("slow_threshold", 100*time.Millisecond)
}

// Validate reports settings the CLI cannot run with.
func (c *Config) Validate() error {
	if !dialect.Supported(dialect.Of(c.Database.Driver)) {
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.Source == "" {
		return fmt.Errorf("database.source is required")
	}
	if c.SlowThreshold < 0 {
		return fmt.Errorf("slow_threshold must not be negative")
	}
	return nil
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for reloader.yaml or reloader.yml,
// stopping at a .git directory or after maxWalkDepth levels.
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
		for _, name := range []string{"reloader.yaml", "reloader.yml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break // repo root
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil
}
