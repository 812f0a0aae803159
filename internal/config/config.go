package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "PHOTOGRID"

// Config holds application configuration.
type Config struct {
	Manifest ManifestConfig `mapstructure:"manifest"`
	Grid     GridConfig     `mapstructure:"grid"`
	Lightbox LightboxConfig `mapstructure:"lightbox"`
	Log      LogConfig      `mapstructure:"log"`
	Keys     []KeyOverride  `mapstructure:"keys"`
}

// ManifestConfig points at the photo manifest. An empty path uses the
// built-in photos.
type ManifestConfig struct {
	Path  string `mapstructure:"path"`
	Watch bool   `mapstructure:"watch"`
}

// GridConfig sizes the grid. Columns of 0 fits as many as the terminal allows.
type GridConfig struct {
	Columns    int `mapstructure:"columns"`
	CellWidth  int `mapstructure:"cell_width"`
	CellHeight int `mapstructure:"cell_height"`
}

type LightboxConfig struct {
	Wrap bool `mapstructure:"wrap"`
}

type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// KeyOverride rebinds one action within a key scope.
type KeyOverride struct {
	Scope  string   `mapstructure:"scope"`
	Action string   `mapstructure:"action"`
	Keys   []string `mapstructure:"keys"`
}

const (
	minCellWidth  = 12
	maxCellWidth  = 60
	minCellHeight = 4
	maxCellHeight = 20
	maxColumns    = 12
)

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Manifest: ManifestConfig{Watch: true},
		Grid:     GridConfig{Columns: 0, CellWidth: 24, CellHeight: 7},
		Lightbox: LightboxConfig{Wrap: true},
		Log:      LogConfig{Path: defaultLogPath(), Level: "info"},
	}
}

// Load reads configuration from file and env. A .env file in the working
// directory is loaded first. Env var overrides use prefix PHOTOGRID_, and
// PHOTOGRID_CONFIG selects the file when path is empty.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	d := Defaults()
	v := viper.New()
	v.SetDefault("manifest.path", d.Manifest.Path)
	v.SetDefault("manifest.watch", d.Manifest.Watch)
	v.SetDefault("grid.columns", d.Grid.Columns)
	v.SetDefault("grid.cell_width", d.Grid.CellWidth)
	v.SetDefault("grid.cell_height", d.Grid.CellHeight)
	v.SetDefault("lightbox.wrap", d.Lightbox.Wrap)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.level", d.Log.Level)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "photogrid"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit path must exist; the default location is optional.
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return Normalize(c), nil
}

// Normalize clamps grid sizes into their supported ranges and fills blanks.
func Normalize(c Config) Config {
	d := Defaults()
	c.Manifest.Path = strings.TrimSpace(c.Manifest.Path)
	if c.Grid.Columns < 0 || c.Grid.Columns > maxColumns {
		c.Grid.Columns = d.Grid.Columns
	}
	c.Grid.CellWidth = clamp(c.Grid.CellWidth, minCellWidth, maxCellWidth, d.Grid.CellWidth)
	c.Grid.CellHeight = clamp(c.Grid.CellHeight, minCellHeight, maxCellHeight, d.Grid.CellHeight)
	if strings.TrimSpace(c.Log.Path) == "" {
		c.Log.Path = d.Log.Path
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	return c
}

func clamp(v, lo, hi, fallback int) int {
	if v == 0 {
		return fallback
	}
	return max(lo, min(hi, v))
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "photogrid", "photogrid.log")
}
