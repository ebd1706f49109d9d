package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"portfolio.dev/internal/content"
	"portfolio.dev/internal/i18n"
)

// Config holds all application configuration
type Config struct {
	ServerAddr      string        `env:"PORTFOLIO_ADDR" envDefault:":8080"`
	DefaultLang     string        `env:"PORTFOLIO_DEFAULT_LANG" envDefault:"en"`
	ContentDir      string        `env:"PORTFOLIO_CONTENT_DIR"`
	AnalyticsDB     string        `env:"PORTFOLIO_ANALYTICS_DB"`
	AnalyticsSalt   string        `env:"PORTFOLIO_ANALYTICS_SALT"`
	MetricsEnabled  bool          `env:"PORTFOLIO_METRICS" envDefault:"true"`
	LogLevel        string        `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"PORTFOLIO_LOG_FORMAT" envDefault:"text"`
	ShutdownTimeout time.Duration `env:"PORTFOLIO_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	defaultLanguage i18n.Language
	content         *content.Content
}

// Load parses the environment and loads the site content. Content defects
// are reported here so a broken site never starts serving.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	lang, err := i18n.ParseLanguage(cfg.DefaultLang)
	if err != nil {
		return nil, fmt.Errorf("PORTFOLIO_DEFAULT_LANG: %w", err)
	}
	cfg.defaultLanguage = lang

	c, err := LoadContent(cfg.ContentDir)
	if err != nil {
		return nil, err
	}
	cfg.content = c

	return &cfg, nil
}

// DefaultLanguage is the parsed PORTFOLIO_DEFAULT_LANG
func (c *Config) DefaultLanguage() i18n.Language {
	return c.defaultLanguage
}

// Content is the validated site content
func (c *Config) Content() *content.Content {
	return c.content
}

// LoadContent reads content from dir, or the embedded set when dir is empty,
// and validates it.
func LoadContent(dir string) (*content.Content, error) {
	var (
		c   *content.Content
		err error
	)
	if dir == "" {
		c, err = content.Load()
	} else {
		c, err = content.LoadDir(dir)
	}
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewLogger builds the process logger from LogLevel and LogFormat
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
