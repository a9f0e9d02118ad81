package dictation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dictation-builder/internal/domain"
	"github.com/heartmarshall/dictation-builder/internal/service/content"
)

// Create assembles and stores a new dictation and returns its id. A blank
// title is generated from the word pairs. Nothing is stored on failure.
func (s *Service) Create(ctx context.Context, in CreateInput) (uuid.UUID, error) {
	if err := in.Validate(s.cfg.MaxWordPairs); err != nil {
		return uuid.Nil, err
	}

	d := in.dictation()
	if d.Title == "" {
		title, err := s.generateTitle(ctx, d)
		if err != nil {
			return uuid.Nil, fmt.Errorf("dictation.Create: title: %w", err)
		}
		d.Title = title
	}

	st, err := s.assembler.Assemble(ctx, d)
	if err != nil {
		return uuid.Nil, fmt.Errorf("dictation.Create: %w", err)
	}

	id := s.newID()
	if err := s.store.Put(ctx, id, st); err != nil {
		return uuid.Nil, fmt.Errorf("dictation.Create: store: %w", err)
	}

	s.log.InfoContext(ctx, "dictation created",
		slog.String("dictation_id", id.String()),
		slog.Int("pairs", len(d.WordPairs)),
	)
	return id, nil
}

func (s *Service) generateTitle(ctx context.Context, d domain.Dictation) (string, error) {
	text := domain.JoinPairs(d.WordPairs)
	if text == "" || strings.TrimSpace(d.FirstLanguage) == "" || strings.TrimSpace(d.SecondLanguage) == "" {
		return content.DefaultTitle, nil
	}
	return s.titles.Title(ctx, content.TitleInput{
		WordPairsText:  text,
		FirstLanguage:  d.FirstLanguage,
		SecondLanguage: d.SecondLanguage,
	})
}
