package extraction

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/dictation-builder/internal/domain"
)

// Upload is a file sent by the form, base64 encoded. File may also be a
// data URL ("data:<mime>;base64,<payload>").
type Upload struct {
	File           string
	FileName       string
	FileType       string
	FirstLanguage  string
	SecondLanguage string
}

// Validate checks all fields and collects all errors.
func (u Upload) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(u.File) == "" {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}
	if len(u.FileName) > 255 {
		errs = append(errs, domain.FieldError{Field: "fileName", Message: "too long (max 255)"})
	}
	if len(u.FirstLanguage) > 50 {
		errs = append(errs, domain.FieldError{Field: "firstLanguage", Message: "too long (max 50)"})
	}
	if len(u.SecondLanguage) > 50 {
		errs = append(errs, domain.FieldError{Field: "secondLanguage", Message: "too long (max 50)"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// extensionTypes covers the accepted extensions independently of the
// system mime tables.
var extensionTypes = map[string]string{
	".txt":  "text/plain",
	".csv":  "text/csv",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// mediaType resolves the upload's media type: the declared type first, then
// the data URL header, then the file extension.
func (u Upload) mediaType() string {
	candidates := []string{u.FileType}
	if header, _, ok := splitDataURL(u.File); ok {
		candidates = append(candidates, strings.TrimSuffix(header, ";base64"))
	}
	if ext := strings.ToLower(filepath.Ext(u.FileName)); ext != "" {
		if mt, ok := extensionTypes[ext]; ok {
			candidates = append(candidates, mt)
		} else {
			candidates = append(candidates, mime.TypeByExtension(ext))
		}
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		if mt, _, err := mime.ParseMediaType(c); err == nil {
			return mt
		}
	}
	return ""
}

// splitDataURL splits "data:<header>,<payload>".
func splitDataURL(s string) (header, payload string, ok bool) {
	rest, found := strings.CutPrefix(s, "data:")
	if !found {
		return "", s, false
	}
	header, payload, ok = strings.Cut(rest, ",")
	if !ok {
		return "", s, false
	}
	return header, payload, true
}
