package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Notify NotifyConfig
	UI     UIConfig
}

// NotifyConfig holds the toast schedule in milliseconds, matching the
// config-file keys. Use the duration accessors for wired values.
type NotifyConfig struct {
	FadeInMs  int `mapstructure:"fade_in_ms"`
	DisplayMs int `mapstructure:"display_ms"`
	FadeOutMs int `mapstructure:"fade_out_ms"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	MaxToasts    int `mapstructure:"max_toasts"`
	VisibleItems int `mapstructure:"visible_items"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// LUCKYDIP_, e.g. LUCKYDIP_NOTIFY_DISPLAY_MS=2000.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("notify.fade_in_ms", 0)
	v.SetDefault("notify.display_ms", 4000)
	v.SetDefault("notify.fade_out_ms", 300)
	v.SetDefault("ui.max_toasts", 3)
	v.SetDefault("ui.visible_items", 10)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LUCKYDIP_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "luckydip"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LUCKYDIP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// FadeInDelay returns the configured pre-visibility pause.
func (n NotifyConfig) FadeInDelay() time.Duration {
	return time.Duration(n.FadeInMs) * time.Millisecond
}

// DisplayDuration returns how long a toast stays fully visible.
func (n NotifyConfig) DisplayDuration() time.Duration {
	return time.Duration(n.DisplayMs) * time.Millisecond
}

// FadeOutDuration returns the fade length before removal.
func (n NotifyConfig) FadeOutDuration() time.Duration {
	return time.Duration(n.FadeOutMs) * time.Millisecond
}
