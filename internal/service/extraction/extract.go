package extraction

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/dictation-builder/internal/domain"
	"github.com/heartmarshall/dictation-builder/pkg/llmjson"
)

// Upload kinds by media type.
var (
	textTypes = map[string]bool{
		"text/plain": true,
		"text/csv":   true,
	}
	imageTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}
)

// Extract returns the word pairs contained in an uploaded text file or
// image. Unsupported types are rejected before the payload is decoded.
func (s *Service) Extract(ctx context.Context, u Upload) ([]domain.WordPair, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	mt := u.mediaType()
	if !textTypes[mt] && !imageTypes[mt] {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFileType, u.FileType)
	}

	data, err := decodePayload(u.File)
	if err != nil {
		return nil, domain.NewValidationError("file", "invalid base64 payload")
	}

	var pairs []domain.WordPair
	if textTypes[mt] {
		pairs, err = ParseText(string(data), s.delimiter)
	} else {
		pairs, err = s.fromImage(ctx, u, mt, data)
	}
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word pairs extracted",
		slog.String("media_type", mt),
		slog.Int("pairs", len(pairs)),
	)
	return pairs, nil
}

func (s *Service) fromImage(ctx context.Context, u Upload, mediaType string, data []byte) ([]domain.WordPair, error) {
	text, err := s.llm.Complete(ctx, domain.CompletionRequest{
		Purpose:   "word_pairs",
		System:    systemPrompt,
		Prompt:    imagePrompt(u.FirstLanguage, u.SecondLanguage),
		Images:    []domain.Image{{MediaType: mediaType, Data: data}},
		MaxTokens: visionMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("extraction.fromImage: %w", err)
	}

	extracted, err := decodePairs(text)
	if err != nil {
		s.log.WarnContext(ctx, "model reply rejected", slog.String("shape", "word_pairs"), slog.String("reason", err.Error()))
		return nil, fmt.Errorf("extraction.fromImage: %w", err)
	}
	if len(extracted.WordPairs) == 0 {
		return nil, domain.ErrNoWordPairs
	}
	return extracted.WordPairs, nil
}

// decodePairs accepts {"wordPairs":[...]} or a bare array.
func decodePairs(text string) (domain.ExtractedPairs, error) {
	var out domain.ExtractedPairs

	raw, err := llmjson.Extract(text)
	if err != nil {
		return out, &domain.ShapeError{Shape: "word_pairs", Reason: err.Error()}
	}
	if strings.HasPrefix(raw, "[") {
		err = json.Unmarshal([]byte(raw), &out.WordPairs)
	} else {
		err = json.Unmarshal([]byte(raw), &out)
	}
	if err != nil {
		return out, &domain.ShapeError{Shape: "word_pairs", Reason: "invalid JSON: " + err.Error()}
	}

	for i, p := range out.WordPairs {
		out.WordPairs[i] = domain.WordPair{
			First:       domain.NormalizeWord(p.First),
			Second:      domain.NormalizeWord(p.Second),
			Sentence:    strings.TrimSpace(p.Sentence),
			ImagePrompt: strings.TrimSpace(p.ImagePrompt),
		}
	}
	if err := out.Validate(); err != nil {
		return out, err
	}
	return out, nil
}

// decodePayload strips an optional data URL header and decodes base64.
func decodePayload(file string) ([]byte, error) {
	_, payload, _ := splitDataURL(strings.TrimSpace(file))
	payload = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == ' ' {
			return -1
		}
		return r
	}, payload)

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
	}
	return data, nil
}
