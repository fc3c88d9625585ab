package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/iroquiz/internal/catalog"
	"github.com/abhisek/iroquiz/internal/config"
	"github.com/abhisek/iroquiz/internal/logger"
	"github.com/abhisek/iroquiz/internal/quiz"
	"github.com/abhisek/iroquiz/internal/session"
)

const fetchTimeout = 30 * time.Second

// env bundles what every subcommand needs: configuration, a logger and a
// catalog loader built from them.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	loader *catalog.Loader
}

func setup(cmd *cobra.Command) (*env, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	aliases, err := cfg.CatalogAliases()
	if err != nil {
		return nil, err
	}
	loader := catalog.NewLoader(aliases, catalog.SourceOptions{
		Encoding:   cfg.SourceEncoding(),
		HTTPClient: &http.Client{Timeout: fetchTimeout},
	}, log)

	return &env{cfg: cfg, logger: log, loader: loader}, nil
}

// load reads every configured source.
func (e *env) load(ctx context.Context) (*catalog.Catalog, *catalog.LoadReport, error) {
	cat, report, err := e.loader.Load(ctx, e.cfg.Sources...)
	if err != nil {
		return nil, nil, err
	}
	e.logger.Info("catalog loaded",
		zap.Strings("sources", report.Sources),
		zap.Int("records", report.RecordsTotal),
		zap.Int("rows_read", report.RowsRead),
	)
	return cat, report, nil
}

// sessionOptions gives every quiz its own RNG. A fixed seed replays the
// same question sequence.
func (e *env) sessionOptions() session.Options {
	return session.Options{
		Quiz:   e.cfg.QuizConfig(),
		Rand:   quiz.NewRand(e.cfg.Quiz.Seed),
		Logger: e.logger,
	}
}

func (e *env) close() {
	_ = e.logger.Sync()
}
