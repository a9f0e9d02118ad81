package dictation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dictation-builder/internal/config"
	"github.com/heartmarshall/dictation-builder/internal/domain"
	"github.com/heartmarshall/dictation-builder/internal/service/content"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type assembler interface {
	Assemble(ctx context.Context, d domain.Dictation) (domain.Structure, error)
}

type titleGenerator interface {
	Title(ctx context.Context, in content.TitleInput) (string, error)
}

type dictationStore interface {
	Put(ctx context.Context, id uuid.UUID, st domain.Structure) error
	Get(ctx context.Context, id uuid.UUID) (domain.Structure, error)
}

type templateSource interface {
	Raw() []byte
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service creates and serves dictations.
type Service struct {
	log       *slog.Logger
	assembler assembler
	titles    titleGenerator
	store     dictationStore
	template  templateSource
	cfg       config.DictationConfig
	newID     func() uuid.UUID
}

// NewService creates a new Dictation service.
func NewService(
	logger *slog.Logger,
	asm assembler,
	titles titleGenerator,
	store dictationStore,
	template templateSource,
	cfg config.DictationConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "dictation"),
		assembler: asm,
		titles:    titles,
		store:     store,
		template:  template,
		cfg:       cfg,
		newID:     uuid.New,
	}
}
