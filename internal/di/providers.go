package di

import (
	"log/slog"
	"os"

	"news-summarizer-client/internal/adapter/console"
	"news-summarizer-client/internal/adapter/discord"
	"news-summarizer-client/internal/adapter/logging"
	"news-summarizer-client/internal/adapter/newsapi"
	"news-summarizer-client/internal/app"
	"news-summarizer-client/internal/config"
	"news-summarizer-client/internal/domain/ports"
	"news-summarizer-client/internal/usecase"
)

// Logs go to stderr so stdout carries only the report.
func provideSlogLogger(cfg *config.Config) (*slog.Logger, error) {
	return logging.NewSlog(os.Stderr, cfg.LogFormat, cfg.LogLevel)
}

func provideReporter() *console.Printer {
	return console.New(os.Stdout)
}

func provideNewsService(cfg *config.Config, reporter ports.Reporter, logger ports.Logger) (ports.NewsService, error) {
	return newsapi.New(cfg.BaseURL, reporter, logger,
		newsapi.WithTimeout(cfg.RequestTimeout),
		newsapi.WithUserAgent(cfg.UserAgent),
	)
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	if cfg.DiscordWebhookURL == "" {
		return nil
	}
	return discord.NewWebhook(cfg.DiscordWebhookURL, cfg.RequestTimeout, logger)
}

func provideSweepConfig(cfg *config.Config) usecase.SweepConfig {
	return usecase.SweepConfig{
		Categories:  cfg.Categories,
		MaxArticles: cfg.SweepMaxArticles,
		Concurrency: cfg.SweepConcurrency,
	}
}

func provideAppOptions(cfg *config.Config) app.Options {
	return app.Options{
		Schedule:    cfg.ScheduleCron,
		MetricsAddr: cfg.MetricsAddr,
	}
}
