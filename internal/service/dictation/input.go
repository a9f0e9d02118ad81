package dictation

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/dictation-builder/internal/domain"
)

const (
	maxTitleLen    = 200
	maxLanguageLen = 50
	maxSentenceLen = 1000
)

// CreateInput holds the parameters for creating a dictation.
type CreateInput struct {
	Title          string
	FirstLanguage  string
	SecondLanguage string
	WordPairs      []domain.WordPair
}

// Validate checks all fields and collects all errors. maxPairs caps the
// number of word pairs. Blank languages and blank pairs are accepted; only
// sizes are bounded.
func (i CreateInput) Validate(maxPairs int) error {
	var errs []domain.FieldError

	if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("too long (max %d)", maxTitleLen)})
	}

	if len(i.FirstLanguage) > maxLanguageLen {
		errs = append(errs, domain.FieldError{Field: "firstLanguage", Message: "too long"})
	}
	if len(i.SecondLanguage) > maxLanguageLen {
		errs = append(errs, domain.FieldError{Field: "secondLanguage", Message: "too long"})
	}

	if maxPairs > 0 && len(i.WordPairs) > maxPairs {
		errs = append(errs, domain.FieldError{Field: "wordPairs", Message: fmt.Sprintf("too many (max %d)", maxPairs)})
	}
	for idx, p := range i.WordPairs {
		if len(p.Sentence) > maxSentenceLen {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("wordPairs[%d].sentence", idx),
				Message: fmt.Sprintf("too long (max %d)", maxSentenceLen),
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// dictation returns the normalized domain value for assembly.
func (i CreateInput) dictation() domain.Dictation {
	pairs := make([]domain.WordPair, len(i.WordPairs))
	for idx, p := range i.WordPairs {
		pairs[idx] = domain.WordPair{
			First:       domain.NormalizeWord(p.First),
			Second:      domain.NormalizeWord(p.Second),
			Sentence:    strings.TrimSpace(p.Sentence),
			ImagePrompt: strings.TrimSpace(p.ImagePrompt),
		}
	}
	return domain.Dictation{
		Title:          domain.NormalizeWord(i.Title),
		FirstLanguage:  strings.TrimSpace(i.FirstLanguage),
		SecondLanguage: strings.TrimSpace(i.SecondLanguage),
		WordPairs:      pairs,
	}
}
