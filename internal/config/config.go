package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rogersnm/tasklist/internal/model"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultNoticeLifetime = 3 * time.Second
	DefaultDeleteDelay    = 500 * time.Millisecond
	envPrefix             = "TASKLIST"
)

type Config struct {
	DefaultFilter  model.Filter  `yaml:"default_filter,omitempty"`
	NoticeLifetime time.Duration `yaml:"notice_lifetime,omitempty"`
	DeleteDelay    time.Duration `yaml:"delete_delay,omitempty"`
	AltScreen      bool          `yaml:"alt_screen,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		DefaultFilter:  model.FilterAll,
		NoticeLifetime: DefaultNoticeLifetime,
		DeleteDelay:    DefaultDeleteDelay,
	}
}

func (c *Config) Validate() error {
	if err := model.ValidateFilter(c.DefaultFilter); err != nil {
		return fmt.Errorf("default_filter: %w", err)
	}
	if c.NoticeLifetime <= 0 {
		return fmt.Errorf("notice_lifetime must be positive, got %s", c.NoticeLifetime)
	}
	if c.DeleteDelay < 0 {
		return fmt.Errorf("delete_delay must not be negative, got %s", c.DeleteDelay)
	}
	return nil
}

func Path(dataDir string) string {
	return filepath.Join(dataDir, "config.yaml")
}

// Load reads config.yaml from dataDir, fills unset fields with defaults and
// applies TASKLIST_* environment overrides.
func Load(dataDir string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(Path(dataDir))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		cfg.merge(&file)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.DefaultFilter != "" {
		c.DefaultFilter = o.DefaultFilter
	}
	if o.NoticeLifetime != 0 {
		c.NoticeLifetime = o.NoticeLifetime
	}
	if o.DeleteDelay != 0 {
		c.DeleteDelay = o.DeleteDelay
	}
	if o.AltScreen {
		c.AltScreen = true
	}
}

func applyEnv(c *Config) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{"default_filter", "notice_lifetime", "delete_delay", "alt_screen"} {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}
	}

	if v.IsSet("default_filter") {
		f, err := model.ParseFilter(v.GetString("default_filter"))
		if err != nil {
			return fmt.Errorf("%s_DEFAULT_FILTER: %w", envPrefix, err)
		}
		c.DefaultFilter = f
	}
	if v.IsSet("notice_lifetime") {
		d, err := time.ParseDuration(v.GetString("notice_lifetime"))
		if err != nil {
			return fmt.Errorf("%s_NOTICE_LIFETIME: %w", envPrefix, err)
		}
		c.NoticeLifetime = d
	}
	if v.IsSet("delete_delay") {
		d, err := time.ParseDuration(v.GetString("delete_delay"))
		if err != nil {
			return fmt.Errorf("%s_DELETE_DELAY: %w", envPrefix, err)
		}
		c.DeleteDelay = d
	}
	if v.IsSet("alt_screen") {
		c.AltScreen = v.GetBool("alt_screen")
	}
	return nil
}

func Save(dataDir string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(Path(dataDir), data, 0644)
}
