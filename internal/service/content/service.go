package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dictation-builder/internal/domain"
	"github.com/heartmarshall/dictation-builder/pkg/llmjson"
)

// DefaultTitle is used when the model returns no usable title.
const DefaultTitle = "Dictation Game"

const titleMaxTokens = 50

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type completer interface {
	Complete(ctx context.Context, req domain.CompletionRequest) (string, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service generates the free-text parts of a dictation through the model.
type Service struct {
	log *slog.Logger
	llm completer
}

// NewService creates a new Content service.
func NewService(logger *slog.Logger, llm completer) *Service {
	return &Service{
		log: logger.With("service", "content"),
		llm: llm,
	}
}

// shape is a typed model result that can check its own required fields.
type shape interface {
	Validate() error
}

// generate runs one completion and decodes the reply into T.
func generate[T shape](ctx context.Context, s *Service, name string, req domain.CompletionRequest) (T, error) {
	var zero T

	req.Purpose = name
	if req.System == "" {
		req.System = systemJSON
	}

	text, err := s.llm.Complete(ctx, req)
	if err != nil {
		return zero, err
	}

	var v T
	if err := llmjson.Decode(text, &v); err != nil {
		reason := "invalid JSON: " + err.Error()
		if errors.Is(err, llmjson.ErrNoJSON) {
			reason = err.Error()
		}
		s.log.WarnContext(ctx, "model reply rejected", slog.String("shape", name), slog.String("reason", reason))
		return zero, &domain.ShapeError{Shape: name, Reason: reason}
	}
	if err := v.Validate(); err != nil {
		s.log.WarnContext(ctx, "model reply rejected", slog.String("shape", name), slog.String("reason", err.Error()))
		return zero, err
	}
	return v, nil
}

func wrap(op string, err error) error {
	return fmt.Errorf("content.%s: %w", op, err)
}
