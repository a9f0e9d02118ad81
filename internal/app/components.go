package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dictation-builder/internal/adapter/filestore"
	"github.com/heartmarshall/dictation-builder/internal/adapter/postgres"
	pgdictation "github.com/heartmarshall/dictation-builder/internal/adapter/postgres/dictation"
	"github.com/heartmarshall/dictation-builder/internal/adapter/provider/claude"
	"github.com/heartmarshall/dictation-builder/internal/config"
	"github.com/heartmarshall/dictation-builder/internal/deck"
	"github.com/heartmarshall/dictation-builder/internal/domain"
	"github.com/heartmarshall/dictation-builder/internal/service/content"
	"github.com/heartmarshall/dictation-builder/internal/service/dictation"
	"github.com/heartmarshall/dictation-builder/internal/service/extraction"
)

// dictationStore is implemented by both storage backends.
type dictationStore interface {
	Put(ctx context.Context, id uuid.UUID, st domain.Structure) error
	Get(ctx context.Context, id uuid.UUID) (domain.Structure, error)
	Ping(ctx context.Context) error
}

// Components holds the wired services shared by the server and the CLI.
type Components struct {
	Template   *deck.Template
	Content    *content.Service
	Extraction *extraction.Service
	Dictations *dictation.Service
	Store      dictationStore

	closers []func()
}

// NewComponents builds every service from cfg. Call Close when done.
func NewComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	tmpl, err := deck.LoadTemplate(cfg.Storage.TemplatePath)
	if err != nil {
		return nil, err
	}

	layout, err := deck.ParseLayout(cfg.Dictation.Layout)
	if err != nil {
		return nil, fmt.Errorf("dictation layout: %w", err)
	}

	c := &Components{Template: tmpl}

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	c.Store = store
	c.closers = append(c.closers, closeStore)

	llm := claude.NewProvider(logger, cfg.LLM)

	c.Content = content.NewService(logger, llm)
	c.Extraction = extraction.NewService(logger, llm, cfg.Upload.Delimiter)

	asm := deck.NewAssembler(logger, tmpl, c.Content, deck.Options{
		Layout:           layout,
		ExampleSentences: cfg.Dictation.ExampleSentences,
	})
	c.Dictations = dictation.NewService(logger, asm, c.Content, store, tmpl, cfg.Dictation)

	return c, nil
}

// Close releases the store.
func (c *Components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// openStore selects the storage backend. The postgres backend applies the
// embedded migrations before connecting.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (dictationStore, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		if err := postgres.Migrate(ctx, logger, cfg.Database.DSN); err != nil {
			return nil, nil, err
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("storage ready", slog.String("backend", config.BackendPostgres))
		return pgdictation.New(logger, pool), pool.Close, nil

	case config.BackendFile, "":
		store, err := filestore.New(logger, cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("storage ready",
			slog.String("backend", config.BackendFile),
			slog.String("dir", cfg.Storage.Dir),
		)
		return store, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
