package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/mcoot/villagegame/internal/model"
)

// EnvPrefix prefixes every environment override, e.g. VILLAGE_ROWS
const EnvPrefix = "VILLAGE"

// Loader reads Config from an optional file plus environment overrides
type Loader struct {
	v    *viper.Viper
	path string
}

// NewLoader creates a loader for path; an empty path means defaults and env only
func NewLoader(path string) *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("rows", def.Rows)
	v.SetDefault("columns", def.Columns)
	v.SetDefault("build_limit", def.BuildLimit)
	// One key per type so a file that caps another type keeps these defaults
	for t, n := range def.Limits {
		v.SetDefault("limits."+t.String(), n)
	}
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.max_size_mb", def.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", def.Log.MaxBackups)
	v.SetDefault("log.max_age_days", def.Log.MaxAgeDays)
	v.SetDefault("log.compress", def.Log.Compress)

	if path != "" {
		v.SetConfigFile(path)
	}

	return &Loader{v: v, path: path}
}

// Load reads the config file if one was given and decodes the result
func (l *Loader) Load() (*Config, error) {
	if l.path != "" {
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", l.path, err)
		}
	}
	return l.decode()
}

// Watch calls fn with the freshly decoded config whenever the file changes.
// fn runs on the watcher goroutine.
func (l *Loader) Watch(fn func(*Config, error)) error {
	if l.path == "" {
		return errors.New("no config file to watch")
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		fn(l.decode())
	})
	l.v.WatchConfig()
	return nil
}

func (l *Loader) decode() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load is a shortcut for NewLoader(path).Load()
func Load(path string) (*Config, error) {
	return NewLoader(path).Load()
}
