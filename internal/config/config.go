package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. THRONESQUIZ_API_BASE_URL.
const EnvPrefix = "THRONESQUIZ"

// Config holds application configuration loaded from defaults, an optional
// config file, the environment and command-line flags.
type Config struct {
	Env      string   `mapstructure:"env"` // local, production
	API      API      `mapstructure:"api"`
	Log      Log      `mapstructure:"log"`
	Portrait Portrait `mapstructure:"portrait"`
}

// API configures the Thrones API client.
type API struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// Log configures the file logger. File "-" disables logging.
type Log struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Portrait configures character portrait rendering.
type Portrait struct {
	Enabled bool `mapstructure:"enabled"`
	Width   int  `mapstructure:"width"` // in terminal cells
}

// Options controls where Load looks for configuration.
type Options struct {
	// ConfigFile is an explicit config file; empty searches the defaults.
	ConfigFile string
	// Flags are bound over file and environment values when set.
	Flags *pflag.FlagSet
	// DotEnv is the .env file loaded before reading the environment.
	DotEnv string
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"api-url":   "api.base_url",
	"log-file":  "log.file",
	"log-level": "log.level",
}

// Load reads configuration.
func Load(opts Options) (*Config, error) {
	dotenv := opts.DotEnv
	if dotenv == "" {
		dotenv = ".env"
	}
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", dotenv, err)
	}

	v := viper.New()

	v.SetDefault("env", "local")
	v.SetDefault("api.base_url", "https://thronesapi.com")
	v.SetDefault("api.timeout", "15s")
	v.SetDefault("api.user_agent", "thronesquiz")
	v.SetDefault("log.file", DefaultLogPath())
	v.SetDefault("log.level", "info")
	v.SetDefault("portrait.enabled", true)
	v.SetDefault("portrait.width", 32)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "thronesquiz"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would make the client unusable.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must not be empty")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must be an http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative, got %s", c.API.Timeout)
	}
	if c.Portrait.Width < 0 {
		return fmt.Errorf("portrait.width must not be negative, got %d", c.Portrait.Width)
	}
	return nil
}

// IsProduction reports whether the production logging profile applies.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DefaultLogPath returns the log file path under the user's state directory,
// falling back to the temp dir.
func DefaultLogPath() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "thronesquiz", "thronesquiz.log")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "thronesquiz", "thronesquiz.log")
	}
	return filepath.Join(os.TempDir(), "thronesquiz.log")
}
