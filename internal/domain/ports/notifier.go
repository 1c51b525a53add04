package ports

import (
	"context"

	"news-summarizer-client/internal/domain/model"
)

// Notifier delivers sweep digests to a downstream channel (e.g. Discord).
type Notifier interface {
	Send(ctx context.Context, notification model.Notification) error
}
