package content

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/dictation-builder/internal/domain"
)

// Title generates a short plain-text title. An empty reply falls back to
// DefaultTitle.
func (s *Service) Title(ctx context.Context, in TitleInput) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}

	text, err := s.llm.Complete(ctx, domain.CompletionRequest{
		Purpose:   "title",
		System:    systemText,
		Prompt:    titlePrompt(in),
		MaxTokens: titleMaxTokens,
	})
	if err != nil {
		return "", wrap("Title", err)
	}

	title := cleanTitle(text)
	if title == "" {
		title = DefaultTitle
	}
	s.log.InfoContext(ctx, "title generated", slog.String("title", title))
	return title, nil
}

// Intro generates the intro slide copy.
func (s *Service) Intro(ctx context.Context, d domain.Dictation) (domain.IntroContent, error) {
	c, err := generate[domain.IntroContent](ctx, s, "intro_content", domain.CompletionRequest{
		Prompt: introPrompt(d),
	})
	if err != nil {
		return c, wrap("Intro", err)
	}
	return c, nil
}

// Outro generates the congratulation shown on the last slide.
func (s *Service) Outro(ctx context.Context, d domain.Dictation) (domain.OutroContent, error) {
	c, err := generate[domain.OutroContent](ctx, s, "outro_content", domain.CompletionRequest{
		Prompt: outroPrompt(d),
	})
	if err != nil {
		return c, wrap("Outro", err)
	}
	return c, nil
}

// Sentence generates an example sentence for one pair in the second language.
func (s *Service) Sentence(ctx context.Context, d domain.Dictation, pair domain.WordPair) (domain.SentenceContent, error) {
	c, err := generate[domain.SentenceContent](ctx, s, "sentence_content", domain.CompletionRequest{
		Prompt: sentencePrompt(d, pair),
	})
	if err != nil {
		return c, wrap("Sentence", err)
	}
	return c, nil
}

// cleanTitle keeps the first line of the reply and strips wrapping quotes.
func cleanTitle(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	text = strings.Trim(text, " \t\"'`“”«»")
	return domain.NormalizeWord(text)
}
