package content

import (
	"strings"

	"github.com/heartmarshall/dictation-builder/internal/domain"
)

// TitleInput holds the parameters for generating a dictation title.
type TitleInput struct {
	WordPairsText  string
	FirstLanguage  string
	SecondLanguage string
}

// Validate checks all fields and collects all errors.
func (i TitleInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.WordPairsText) == "" {
		errs = append(errs, domain.FieldError{Field: "wordPairsText", Message: "required"})
	}
	if len(i.WordPairsText) > 5000 {
		errs = append(errs, domain.FieldError{Field: "wordPairsText", Message: "too long (max 5000)"})
	}
	if strings.TrimSpace(i.FirstLanguage) == "" {
		errs = append(errs, domain.FieldError{Field: "firstLanguage", Message: "required"})
	}
	if strings.TrimSpace(i.SecondLanguage) == "" {
		errs = append(errs, domain.FieldError{Field: "secondLanguage", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
