package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/blackwell-systems/floractl/internal/util"
)

// EnvPrefix prefixes every environment override, e.g. FLORACTL_SERVE_PORT.
const EnvPrefix = "FLORACTL"

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "floractl", "config.yml")
}

// Path resolves the config file location: the explicit path, then
// FLORACTL_CONFIG, then DefaultPath.
func Path(explicit string) string {
	if explicit != "" {
		return util.ExpandHome(explicit)
	}
	if env := os.Getenv(EnvPrefix + "_CONFIG"); env != "" {
		return util.ExpandHome(env)
	}
	return DefaultPath()
}

// Load reads the config from path (see Path) and the environment. A missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("catalog.path", "plants.json")
	v.SetDefault("site.out_dir", "site")
	v.SetDefault("site.title", "")
	v.SetDefault("serve.host", "127.0.0.1")
	v.SetDefault("serve.port", 8080)
	v.SetDefault("prefs.backend", "file")
	v.SetDefault("prefs.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(Path(path))
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Catalog.Path = util.ExpandHome(cfg.Catalog.Path)
	cfg.Site.OutDir = util.ExpandHome(cfg.Site.OutDir)
	cfg.Prefs.Path = util.ExpandHome(cfg.Prefs.Path)

	return &cfg, nil
}

// Save writes the config as YAML to path (see Path).
func Save(cfg *Config, path string) error {
	path = Path(path)
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return enc.Close()
}

func defaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "floractl")
}
