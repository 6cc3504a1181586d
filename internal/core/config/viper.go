package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/solatis/cronconv/internal/cronexpr"
)

// EnvPrefix prefixes every environment override, e.g. CRONCONV_SERVER_PORT.
const EnvPrefix = "CRONCONV"

// LoadConfig loads configuration from file using viper.
// CLI flags > environment > config file > defaults precedence.
func LoadConfig(configPath string) (*Config, error) {
	return load(configPath, nil)
}

// LoadConfigWith loads configuration like LoadConfig, with overrides applied
// above every other source. The command layer passes flag values here.
func LoadConfigWith(configPath string, overrides map[string]any) (*Config, error) {
	return load(configPath, overrides)
}

func load(configPath string, overrides map[string]any) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	// Bind environment variables with CRONCONV_ prefix
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	cfg := &Config{
		Converter: ConverterConfig{
			AllowEmpty:  v.GetString("converter.allow_empty"),
			Shortcuts:   v.GetStringSlice("converter.shortcuts"),
			Humanize:    v.GetBool("converter.humanize"),
			LeadingZero: v.GetStringSlice("converter.leading_zero"),
			ClockFormat: v.GetString("converter.clock_format"),
			LocaleFile:  v.GetString("converter.locale_file"),
		},
		Server: ServerConfig{
			Host:           v.GetString("server.host"),
			Port:           v.GetInt("server.port"),
			RequestTimeout: v.GetDuration("server.request_timeout"),
		},
		DB: DBConfig{
			URL: v.GetString("db.url"),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("converter.allow_empty", d.Converter.AllowEmpty)
	v.SetDefault("converter.shortcuts", d.Converter.Shortcuts)
	v.SetDefault("converter.humanize", d.Converter.Humanize)
	v.SetDefault("converter.leading_zero", d.Converter.LeadingZero)
	v.SetDefault("converter.clock_format", d.Converter.ClockFormat)
	v.SetDefault("converter.locale_file", d.Converter.LocaleFile)
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.request_timeout", d.Server.RequestTimeout.String())
	v.SetDefault("db.url", d.DB.URL)
}

// validateConfig checks port range, positive timeout, a database URL and
// every converter enum. The locale file is only opened by Options.
func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %v", cfg.Server.RequestTimeout)
	}
	if cfg.DB.URL == "" {
		return fmt.Errorf("db.url must not be empty")
	}

	c := cfg.Converter
	if _, err := cronexpr.ParseAllowEmpty(c.AllowEmpty); err != nil {
		return fmt.Errorf("converter.allow_empty: %w", err)
	}
	if _, err := shortcutPolicy(c.Shortcuts); err != nil {
		return fmt.Errorf("converter.shortcuts: %w", err)
	}
	if _, err := leadingZero(c.LeadingZero); err != nil {
		return fmt.Errorf("converter.leading_zero: %w", err)
	}
	if _, err := cronexpr.ParseClockFormat(c.ClockFormat); err != nil {
		return fmt.Errorf("converter.clock_format: %w", err)
	}
	return nil
}
