package extraction

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/dictation-builder/internal/domain"
)

// DefaultDelimiter separates the two words of a line in text uploads.
const DefaultDelimiter = ","

const visionMaxTokens = 3500

type completer interface {
	Complete(ctx context.Context, req domain.CompletionRequest) (string, error)
}

// Service turns uploaded files into word pairs.
type Service struct {
	log       *slog.Logger
	llm       completer
	delimiter string
}

// NewService creates a new extraction service. An empty delimiter selects
// DefaultDelimiter.
func NewService(logger *slog.Logger, llm completer, delimiter string) *Service {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	return &Service{
		log:       logger.With("service", "extraction"),
		llm:       llm,
		delimiter: delimiter,
	}
}
