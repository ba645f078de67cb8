package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Catalog CatalogConfig
	UI      UIConfig
	Log     LogConfig
}

// CatalogConfig points at the job catalog store.
type CatalogConfig struct {
	DSN      string
	SeedFile string `mapstructure:"seed_file"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Brand     string
	AltScreen bool   `mapstructure:"alt_screen"`
	ResumeDir string `mapstructure:"resume_dir"`
}

// LogConfig holds log sink settings. An empty path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

const envPrefix = "KIKAPORTALS"

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "kikaportals", "config.toml")
}

func newViper() *viper.Viper {
	v := viper.New()
	home := os.Getenv("HOME")

	// default values
	v.SetDefault("catalog.dsn", "file:kikaportals?mode=memory&cache=shared")
	v.SetDefault("catalog.seed_file", "")
	v.SetDefault("ui.brand", "kikaportals")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.resume_dir", home)
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "kikaportals", "kikaportals.log"))
	v.SetDefault("log.level", "info")
	return v
}

// Defaults returns the built-in settings, ignoring files and env.
func Defaults() (Config, error) {
	var c Config
	if err := newViper().Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Load reads configuration from file and env. Env var overrides use prefix
// KIKAPORTALS_. An explicit path must exist; the default path may be absent.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("catalog.dsn", cfg.Catalog.DSN)
	v.Set("catalog.seed_file", cfg.Catalog.SeedFile)
	v.Set("ui.brand", cfg.UI.Brand)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("ui.resume_dir", cfg.UI.ResumeDir)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
