package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
)

// Prefix is prepended to every environment variable, e.g. NEWS_CLIENT_BASE_URL.
const Prefix = "NEWS_CLIENT"

// Config contains runtime configuration values.
type Config struct {
	BaseURL        string        `envconfig:"BASE_URL" default:"https://yd-mastra-agent.your-subdomain.workers.dev"`
	UserAgent      string        `envconfig:"USER_AGENT" default:"NewsSummarizerClient/1.0"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"0s"` // 0 waits indefinitely

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	Categories       []string `envconfig:"CATEGORIES" default:"technology,business,science,health"`
	SweepMaxArticles int      `envconfig:"SWEEP_MAX_ARTICLES" default:"2"`
	SweepConcurrency int      `envconfig:"SWEEP_CONCURRENCY" default:"1"`

	ScheduleCron      string `envconfig:"SCHEDULE_CRON" default:"0 9 * * *"` // 09:00 every day
	DiscordWebhookURL string `envconfig:"DISCORD_WEBHOOK_URL"`
	MetricsAddr       string `envconfig:"METRICS_ADDR"`
}

// Load reads an optional .env file and then the NEWS_CLIENT_* environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	cfg.Categories = cleanCategories(cfg.Categories)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later at call time.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s_BASE_URL must be an absolute http(s) URL, got %q", Prefix, c.BaseURL)
	}
	if c.UserAgent == "" {
		return fmt.Errorf("%s_USER_AGENT must not be empty", Prefix)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("%s_REQUEST_TIMEOUT must not be negative", Prefix)
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("%s_CATEGORIES must list at least one category", Prefix)
	}
	if c.SweepConcurrency < 1 {
		return fmt.Errorf("%s_SWEEP_CONCURRENCY must be >= 1", Prefix)
	}
	if c.ScheduleCron != "" {
		if _, err := cron.ParseStandard(c.ScheduleCron); err != nil {
			return fmt.Errorf("%s_SCHEDULE_CRON: %w", Prefix, err)
		}
	}
	return nil
}

func cleanCategories(in []string) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
