package config

import (
	"net"
	"path/filepath"
	"strconv"

	"github.com/blackwell-systems/floractl/internal/prefs"
)

// Config is the top-level floractl configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	Site    SiteConfig    `mapstructure:"site" yaml:"site"`
	Serve   ServeConfig   `mapstructure:"serve" yaml:"serve"`
	Prefs   PrefsConfig   `mapstructure:"prefs" yaml:"prefs"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// CatalogConfig locates the plant data file (JSON or YAML).
type CatalogConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// SiteConfig holds static site generation settings.
type SiteConfig struct {
	OutDir string `mapstructure:"out_dir" yaml:"out_dir"`
	Title  string `mapstructure:"title" yaml:"title,omitempty"`
}

// ServeConfig holds the local HTTP server address.
type ServeConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// Addr returns host:port.
func (s ServeConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// PrefsConfig selects the preference store.
type PrefsConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend"` // "file" or "sqlite"
	Path    string `mapstructure:"path" yaml:"path,omitempty"`
}

// EffectivePath returns the configured store path, or the default for the
// backend under ~/.local/share/floractl.
func (p PrefsConfig) EffectivePath() string {
	if p.Path != "" {
		return p.Path
	}
	if p.Backend == prefs.BackendSQLite {
		return filepath.Join(defaultDataDir(), "prefs.db")
	}
	return filepath.Join(defaultDataDir(), "prefs.yml")
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // console or json
}
