package ports

import (
	"context"

	"news-summarizer-client/internal/domain/model"
)

// NewsService is the remote news summarizer API.
type NewsService interface {
	CheckHealth(ctx context.Context) (model.Payload, error)
	GetQuickNews(ctx context.Context, query model.NewsQuery) (model.Payload, error)
	GetDetailedAnalysis(ctx context.Context, req model.AnalysisRequest) (model.Payload, error)
	GetAPIDocs(ctx context.Context) (model.Payload, error)
}
