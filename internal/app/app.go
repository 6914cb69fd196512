package app

import (
	"context"
	"log/slog"
	"os"
	"time"

	"FadaMonitor/internal/config"
	"FadaMonitor/internal/infrastructure/email"
	"FadaMonitor/internal/infrastructure/fetch"
	"FadaMonitor/internal/infrastructure/llm"
	"FadaMonitor/internal/infrastructure/notify"
	"FadaMonitor/internal/infrastructure/parser"
	"FadaMonitor/internal/infrastructure/pdftext"
	"FadaMonitor/internal/infrastructure/scheduler"
	"FadaMonitor/internal/infrastructure/state"
	"FadaMonitor/internal/logging"
	"FadaMonitor/internal/ports"
	"FadaMonitor/internal/usecase"
)

// Application wires configuration to adapters and orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	fetcher := fetch.NewHTTPFetcher(cfg.Source, cfg.HTTP)
	listingParser := parser.NewListingParser(cfg.Source.BaseURL, baseLogger.With("component", "parser"))
	store := state.NewFileStore(cfg.Storage.StateFile)
	extractor := pdftext.NewProcessor(
		baseLogger.With("component", "pdftext"),
		primaryEngine(cfg.Extract),
		pdftext.FallbackEngine{},
	)

	var summarizer ports.Summarizer
	switch {
	case cfg.Summary.Disabled:
		baseLogger.Info("summarization disabled by configuration, using placeholder summaries")
	case cfg.Summary.APIKey == "":
		baseLogger.Info("ANTHROPIC_API_KEY not set, using placeholder summaries")
	default:
		summarizer = llm.NewAnthropicSummarizer(cfg.Summary)
	}

	notifier := notify.NewReportNotifier(
		os.Stdout,
		email.NewMailer(cfg.SMTP),
		cfg.Notify.Email,
		baseLogger.With("component", "notify"),
	)

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Fetcher:     fetcher,
		Parser:      listingParser,
		Store:       store,
		Extractor:   extractor,
		Summarizer:  summarizer,
		Notifier:    notifier,
		DownloadDir: cfg.Storage.DownloadDir,
		Logger:      baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, logger: baseLogger, pipeline: pipeline}
}

// Run performs a single pipeline execution.
func (a *Application) Run(ctx context.Context) error {
	if a.pipeline == nil {
		return nil
	}
	return a.pipeline.Run(ctx, time.Now())
}

// Watch runs the pipeline on the configured interval until the context is
// cancelled.
func (a *Application) Watch(ctx context.Context) error {
	driver := scheduler.NewIntervalScheduler(a.cfg.Watch.Interval())
	sched := usecase.NewScheduler(driver, a.pipeline, a.logger.With("component", "scheduler"))

	if err := sched.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return sched.Stop(context.Background())
}

func primaryEngine(cfg config.ExtractConfig) pdftext.Engine {
	if cfg.DisablePrimary {
		return pdftext.Disable(pdftext.PrimaryEngine{})
	}
	return pdftext.PrimaryEngine{}
}
