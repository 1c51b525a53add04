package ports

import (
	"context"

	"news-summarizer-client/internal/domain/model"
)

// Reporter renders human-readable progress and results for the operator.
type Reporter interface {
	Result(ctx context.Context, title string, payload model.Payload)
	Failure(ctx context.Context, name string, err error)
	Heading(ctx context.Context, text string)
	Line(ctx context.Context, text string)
	Blank(ctx context.Context)
}
