package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/stewardhq/steward/conversation"
)

// Config is the root configuration of the assistant shell.
type Config struct {
	Logging      LoggingConfig           `mapstructure:"logging"`
	Conversation ConversationConfig      `mapstructure:"conversation"`
	Plugins      map[string]PluginConfig `mapstructure:"plugins"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// ConversationConfig tunes the conversation history.
type ConversationConfig struct {
	HistoryLimit int `mapstructure:"history_limit"`
}

// PluginConfig is the per-plugin configuration fragment handed to the loader
// that constructs plugin instances. Only the enabled flag is interpreted by
// the shell itself; everything else is plugin-specific.
type PluginConfig struct {
	Enabled *bool          `mapstructure:"enabled"`
	Options map[string]any `mapstructure:",remain"`
}

// IsEnabled reports the enabled flag, defaulting to true when unset.
func (c PluginConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Logging:      LoggingConfig{Level: "info", Format: "text"},
		Conversation: ConversationConfig{HistoryLimit: conversation.DefaultLimit},
		Plugins:      map[string]PluginConfig{},
	}
}

// Load reads the configuration from the given path, or from the search
// list config/local.yaml, config/config.yaml when path is empty. A missing
// file during search is not an error; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("conversation.history_limit", conversation.DefaultLimit)

	v.SetEnvPrefix("STEWARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.AddConfigPath("config")
		v.AddConfigPath(".")
		for _, name := range []string{"local", "config"} {
			v.SetConfigName(name)
			err := v.ReadInConfig()
			if err == nil {
				break
			}
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
