package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"news-summarizer-client/internal/domain/model"
	"news-summarizer-client/internal/domain/ports"
)

const (
	headlinesPerCategory = 3
	headlineLimit        = 120
	discordFieldLimit    = 1000
)

// Sweep defaults shared by the configuration and the command line.
const (
	DefaultSweepMaxArticles = 2
	DefaultSweepConcurrency = 1
)

// DefaultCategories are swept when no list is configured.
func DefaultCategories() []string {
	return []string{"technology", "business", "science", "health"}
}

// CategorySweep fetches quick news for each configured category. Every
// category gets exactly one request and its outcome never affects the others.
type CategorySweep struct {
	service     ports.NewsService
	notifier    ports.Notifier
	reporter    ports.Reporter
	logger      ports.Logger
	categories  []string
	maxArticles int
	concurrency int
}

// SweepConfig controls which categories are fetched and how.
type SweepConfig struct {
	Categories  []string
	MaxArticles int
	// Concurrency above 1 issues requests in parallel; results are still
	// reported in category order.
	Concurrency int
}

// NewCategorySweep constructs a CategorySweep. notifier may be nil.
func NewCategorySweep(
	service ports.NewsService,
	notifier ports.Notifier,
	reporter ports.Reporter,
	logger ports.Logger,
	cfg SweepConfig,
) *CategorySweep {
	categories := cfg.Categories
	if len(categories) == 0 {
		categories = DefaultCategories()
	}
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = DefaultSweepConcurrency
	}
	return &CategorySweep{
		service:     service,
		notifier:    notifier,
		reporter:    reporter,
		logger:      logger,
		categories:  categories,
		maxArticles: cfg.MaxArticles,
		concurrency: concurrency,
	}
}

// Run sweeps every category and returns the per-category outcomes in input
// order. Individual failures are recorded in the report, not returned.
func (s *CategorySweep) Run(ctx context.Context) model.SweepReport {
	report := model.SweepReport{StartedAt: time.Now()}
	s.reporter.Line(ctx, "🔬 Advanced Examples:")
	s.reporter.Blank(ctx)

	if s.concurrency == 1 {
		report.Results = s.runSequential(ctx)
	} else {
		report.Results = s.runConcurrent(ctx)
	}
	report.Duration = time.Since(report.StartedAt)

	s.logger.Info(ctx, "category sweep completed",
		"categories", len(report.Results),
		"succeeded", report.Succeeded(),
		"duration", report.Duration)

	s.notify(ctx, report)
	return report
}

func (s *CategorySweep) runSequential(ctx context.Context) []model.CategoryResult {
	results := make([]model.CategoryResult, 0, len(s.categories))
	for _, category := range s.categories {
		s.reporter.Line(ctx, fmt.Sprintf("📂 Fetching %s news...", category))
		res := s.fetch(ctx, category)
		s.printOutcome(ctx, res)
		results = append(results, res)
	}
	return results
}

func (s *CategorySweep) runConcurrent(ctx context.Context) []model.CategoryResult {
	results := make([]model.CategoryResult, len(s.categories))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, category := range s.categories {
		g.Go(func() error {
			results[i] = s.fetch(ctx, category)
			return nil
		})
	}
	_ = g.Wait()

	for _, res := range results {
		s.reporter.Line(ctx, fmt.Sprintf("📂 Fetching %s news...", res.Category))
		s.printOutcome(ctx, res)
	}
	return results
}

func (s *CategorySweep) fetch(ctx context.Context, category string) model.CategoryResult {
	res := model.CategoryResult{Category: category}

	payload, err := s.service.GetQuickNews(ctx, model.NewsQuery{Category: category, MaxArticles: s.maxArticles})
	if err != nil {
		res.Err = err
		s.logger.Warn(ctx, "category fetch failed", "category", category, "error", err)
		return res
	}

	res.Success = payload.Success()
	res.Count = len(payload.Summaries())
	for _, headline := range payload.Headlines(headlinesPerCategory) {
		if text := plainText(headline); text != "" {
			res.Headlines = append(res.Headlines, truncate(text, headlineLimit))
		}
	}
	return res
}

func (s *CategorySweep) printOutcome(ctx context.Context, res model.CategoryResult) {
	switch {
	case res.Err != nil:
		s.reporter.Line(ctx, fmt.Sprintf("   ❌ Error: %v", res.Err))
	case res.Success:
		s.reporter.Line(ctx, fmt.Sprintf("   ✅ Fetched %d %s articles", res.Count, res.Category))
		for _, headline := range res.Headlines {
			s.reporter.Line(ctx, "      • "+headline)
		}
	default:
		s.reporter.Line(ctx, fmt.Sprintf("   ❌ Failed to fetch %s news", res.Category))
	}
	s.reporter.Blank(ctx)
}

func (s *CategorySweep) notify(ctx context.Context, report model.SweepReport) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Send(ctx, buildNotification(report)); err != nil {
		s.logger.Error(ctx, "failed to send sweep notification", "error", err)
	}
}

func buildNotification(report model.SweepReport) model.Notification {
	fields := make([]model.NotificationField, 0, len(report.Results))
	for _, res := range report.Results {
		fields = append(fields, model.NotificationField{
			Name:  titleCase(res.Category),
			Value: formatCategoryField(res),
		})
	}

	return model.Notification{
		Title: "News Summary Sweep",
		Description: fmt.Sprintf("%d of %d categories fetched in %s.",
			report.Succeeded(), len(report.Results), report.Duration.Round(time.Millisecond)),
		Fields:    fields,
		Timestamp: report.StartedAt,
	}
}

func formatCategoryField(res model.CategoryResult) string {
	switch {
	case res.Err != nil:
		return truncate("Error: "+res.Err.Error(), discordFieldLimit)
	case !res.Success:
		return "Service reported no success."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("**%d** articles", res.Count))
	for i, headline := range res.Headlines {
		builder.WriteString(fmt.Sprintf("\n%d. %s", i+1, headline))
	}
	return truncate(builder.String(), discordFieldLimit)
}
