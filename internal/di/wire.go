//go:build wireinject

package di

import (
	"github.com/google/wire"

	"news-summarizer-client/internal/adapter/console"
	"news-summarizer-client/internal/adapter/logging"
	"news-summarizer-client/internal/app"
	"news-summarizer-client/internal/config"
	"news-summarizer-client/internal/domain/ports"
	"news-summarizer-client/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(cfg *config.Config) (*app.App, error) {
	wire.Build(
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideReporter,
		wire.Bind(new(ports.Reporter), new(*console.Printer)),
		provideNewsService,
		provideNotifier,
		usecase.NewDemo,
		provideSweepConfig,
		usecase.NewCategorySweep,
		provideAppOptions,
		app.New,
	)
	return nil, nil
}
