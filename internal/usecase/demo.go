package usecase

import (
	"context"
	"fmt"
	"time"

	"news-summarizer-client/internal/domain/model"
	"news-summarizer-client/internal/domain/ports"
)

type demoStep struct {
	title string
	run   func(ctx context.Context, svc ports.NewsService) error
}

// demoSteps is the fixed demonstration sequence.
var demoSteps = []demoStep{
	{
		title: "1️⃣ Health Check:",
		run: func(ctx context.Context, svc ports.NewsService) error {
			_, err := svc.CheckHealth(ctx)
			return err
		},
	},
	{
		title: "2️⃣ Quick Tech News:",
		run: func(ctx context.Context, svc ports.NewsService) error {
			_, err := svc.GetQuickNews(ctx, model.NewsQuery{Category: "technology", MaxArticles: 3})
			return err
		},
	},
	{
		title: "3️⃣ Detailed AI News Analysis:",
		run: func(ctx context.Context, svc ports.NewsService) error {
			_, err := svc.GetDetailedAnalysis(ctx, model.AnalysisRequest{
				Category:      "AI",
				MaxArticles:   5,
				SummaryLength: model.SummaryLong,
				FocusAreas:    []string{"machine learning", "chatgpt", "deepseek"},
			})
			return err
		},
	},
	{
		title: "4️⃣ Business News:",
		run: func(ctx context.Context, svc ports.NewsService) error {
			_, err := svc.GetQuickNews(ctx, model.NewsQuery{Category: "business", MaxArticles: 3})
			return err
		},
	},
	{
		title: "5️⃣ API Documentation:",
		run: func(ctx context.Context, svc ports.NewsService) error {
			_, err := svc.GetAPIDocs(ctx)
			return err
		},
	},
}

// Demo walks through every endpoint once, in a fixed order.
type Demo struct {
	service  ports.NewsService
	reporter ports.Reporter
	logger   ports.Logger
}

// NewDemo constructs the demonstration use case.
func NewDemo(service ports.NewsService, reporter ports.Reporter, logger ports.Logger) *Demo {
	return &Demo{service: service, reporter: reporter, logger: logger}
}

// Run executes the steps in order. The first failing step aborts the rest and
// its error is returned.
func (d *Demo) Run(ctx context.Context) error {
	start := time.Now()
	d.reporter.Line(ctx, "🚀 Starting News Summarizer API tests...")
	d.reporter.Blank(ctx)

	for i, step := range demoSteps {
		d.reporter.Heading(ctx, step.title)
		if err := step.run(ctx, d.service); err != nil {
			d.reporter.Line(ctx, fmt.Sprintf("💥 Test Failed: %v", err))
			d.logger.Error(ctx, "demonstration aborted", "step", i+1, "error", err)
			return fmt.Errorf("demo step %d: %w", i+1, err)
		}
		if i < len(demoSteps)-1 {
			d.reporter.Blank(ctx)
		}
	}

	d.logger.Info(ctx, "demonstration completed", "steps", len(demoSteps), "duration", time.Since(start))
	return nil
}
