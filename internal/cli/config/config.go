package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"github.com/gnuletik/datocms-client-go/pkg/seo"
)

// EnvPrefix prefixes environment variable overrides (SEOTAGS_LOCALE, SEOTAGS_SERVER_ADDR)
const EnvPrefix = "SEOTAGS"

// Config represents the seotags configuration
type Config struct {
	Locale string       `mapstructure:"locale"`
	Images ImagesConfig `mapstructure:"images"`
	SEO    SEOConfig    `mapstructure:"seo"`
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
}

// ImagesConfig represents image URL configuration
type ImagesConfig struct {
	Host string `mapstructure:"host"`
}

// SEOConfig represents tag resolution settings
type SEOConfig struct {
	ArticleTypes []string `mapstructure:"article_types"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Addr  string `mapstructure:"addr"`
	Pprof bool   `mapstructure:"pprof"`
}

// Load loads the configuration from seotags.yml / seotags.yaml in the working
// directory, or from path when it is not empty
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("locale", seo.DefaultLocale)
	v.SetDefault("images.host", "")
	v.SetDefault("seo.article_types", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.pprof", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("seotags")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Enable environment variable support
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	return &Config{
		Locale: seo.DefaultLocale,
		Log:    LogConfig{Level: "info"},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Env returns the tag resolution environment described by the configuration
func (c *Config) Env() seo.Env {
	return seo.Env{
		Locale:       c.Locale,
		Images:       seo.HostImageURL{Host: c.Images.Host},
		ArticleTypes: c.SEO.ArticleTypes,
	}
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.Locale != "" {
		if _, err := language.Parse(cfg.Locale); err != nil {
			return fmt.Errorf("locale must be a BCP 47 language tag, got: %s", cfg.Locale)
		}
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got: %s", cfg.Log.Level)
	}

	if strings.Contains(cfg.Images.Host, "/") && !strings.HasPrefix(cfg.Images.Host, "http") {
		return fmt.Errorf("images.host must be a host name or URL, got: %s", cfg.Images.Host)
	}

	if cfg.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	return nil
}
