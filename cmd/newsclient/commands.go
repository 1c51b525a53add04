package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"news-summarizer-client/internal/app"
	"news-summarizer-client/internal/config"
	"news-summarizer-client/internal/di"
	"news-summarizer-client/internal/domain/model"
	"news-summarizer-client/internal/usecase"
)

type globalFlags struct {
	baseURL  string
	timeout  time.Duration
	logLevel string
}

// NewRootCmd constructs the CLI; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "newsclient",
		Short:         "Client for the News Summarizer Agent API",
		Long:          "Without a sub-command, runs the endpoint demonstration followed by the category sweep.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd, flags, nil)
			if err != nil {
				return err
			}
			return a.Once(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "service base URL (overrides NEWS_CLIENT_BASE_URL)")
	root.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "per-request timeout, 0 waits indefinitely (overrides NEWS_CLIENT_REQUEST_TIMEOUT)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (overrides NEWS_CLIENT_LOG_LEVEL)")

	root.AddCommand(
		newHealthCmd(flags),
		newNewsCmd(flags),
		newSummarizeCmd(flags),
		newDocsCmd(flags),
		newSweepCmd(flags),
		newScheduleCmd(flags),
	)
	return root
}

// buildApp loads configuration, applies flag overrides and wires the app.
// tweak, when set, adjusts the configuration after the global overrides.
func buildApp(cmd *cobra.Command, flags *globalFlags, tweak func(*config.Config)) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	pf := cmd.Flags()
	if pf.Changed("base-url") {
		cfg.BaseURL = flags.baseURL
	}
	if pf.Changed("timeout") {
		cfg.RequestTimeout = flags.timeout
	}
	if pf.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if tweak != nil {
		tweak(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return di.InitializeApp(cfg)
}

func newHealthCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check service health (GET /health)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd, flags, nil)
			if err != nil {
				return err
			}
			_, err = a.Service().CheckHealth(cmd.Context())
			return err
		},
	}
}

func newNewsCmd(flags *globalFlags) *cobra.Command {
	var query model.NewsQuery

	cmd := &cobra.Command{
		Use:   "news",
		Short: "Fetch quick news summaries (GET /api/news)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd, flags, nil)
			if err != nil {
				return err
			}
			_, err = a.Service().GetQuickNews(cmd.Context(), query)
			return err
		},
	}
	cmd.Flags().StringVar(&query.Category, "category", model.DefaultCategory, "news category")
	cmd.Flags().IntVar(&query.MaxArticles, "max-articles", model.DefaultQuickArticles, "maximum number of articles")
	return cmd
}

func newSummarizeCmd(flags *globalFlags) *cobra.Command {
	var (
		req    model.AnalysisRequest
		length string
		focus  []string
	)

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Request a detailed analysis (POST /api/summarize)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.SummaryLength = model.SummaryLength(length)
			if cmd.Flags().Changed("focus") {
				req.FocusAreas = append([]string{}, focus...)
			}

			a, err := buildApp(cmd, flags, nil)
			if err != nil {
				return err
			}
			_, err = a.Service().GetDetailedAnalysis(cmd.Context(), req)
			return err
		},
	}
	cmd.Flags().StringVar(&req.Category, "category", model.DefaultCategory, "news category")
	cmd.Flags().IntVar(&req.MaxArticles, "max-articles", model.DefaultAnalysisArticles, "maximum number of articles to analyse")
	cmd.Flags().StringVar(&length, "length", string(model.DefaultSummaryLength), "summary length: short, medium or long")
	cmd.Flags().StringSliceVar(&focus, "focus", nil, "focus areas, comma separated (default AI,startups)")
	return cmd
}

func newDocsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Print the API documentation (GET /api/docs)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd, flags, nil)
			if err != nil {
				return err
			}
			_, err = a.Service().GetAPIDocs(cmd.Context())
			return err
		},
	}
}

func newSweepCmd(flags *globalFlags) *cobra.Command {
	var (
		categories  []string
		maxArticles int
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Fetch quick news for each category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd, flags, func(cfg *config.Config) {
				if cmd.Flags().Changed("categories") {
					cfg.Categories = categories
				}
				if cmd.Flags().Changed("max-articles") {
					cfg.SweepMaxArticles = maxArticles
				}
				if cmd.Flags().Changed("concurrency") {
					cfg.SweepConcurrency = concurrency
				}
			})
			if err != nil {
				return err
			}

			report := a.Sweep().Run(cmd.Context())
			if report.Succeeded() == 0 && len(report.Results) > 0 {
				return fmt.Errorf("no category could be fetched")
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&categories, "categories", nil, "categories to fetch (overrides NEWS_CLIENT_CATEGORIES)")
	cmd.Flags().IntVar(&maxArticles, "max-articles", usecase.DefaultSweepMaxArticles, "articles per category")
	cmd.Flags().IntVar(&concurrency, "concurrency", usecase.DefaultSweepConcurrency, "parallel requests; 1 fetches sequentially")
	return cmd
}

func newScheduleCmd(flags *globalFlags) *cobra.Command {
	var schedule string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Sweep now and then on a cron schedule until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd, flags, func(cfg *config.Config) {
				if cmd.Flags().Changed("cron") {
					cfg.ScheduleCron = schedule
				}
			})
			if err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&schedule, "cron", "", "standard 5-field cron expression (overrides NEWS_CLIENT_SCHEDULE_CRON)")
	return cmd
}
