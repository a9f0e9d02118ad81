package domain

import (
	"fmt"
	"strings"
)

// IntroContent is the generated copy for the intro slide.
type IntroContent struct {
	Title         string `json:"title"`
	WordPairsList string `json:"wordPairsList"`
	IntroContent  string `json:"introContent"`
}

// Validate checks that every field of the intro shape is present.
func (c IntroContent) Validate() error {
	return requireFields("intro_content",
		field{"title", c.Title},
		field{"wordPairsList", c.WordPairsList},
		field{"introContent", c.IntroContent},
	)
}

// OutroContent is the generated congratulation for the outro slide.
type OutroContent struct {
	CongratsMessage string `json:"congratsMessage"`
}

// Validate checks that the congratulation is present.
func (c OutroContent) Validate() error {
	return requireFields("outro_content", field{"congratsMessage", c.CongratsMessage})
}

// SentenceContent is a generated example sentence for one pair.
type SentenceContent struct {
	Sentence string `json:"sentence"`
}

// Validate checks that the sentence is present.
func (c SentenceContent) Validate() error {
	return requireFields("sentence_content", field{"sentence", c.Sentence})
}

// ExtractedPairs is the shape returned by the image extractor.
type ExtractedPairs struct {
	WordPairs []WordPair `json:"wordPairs"`
}

// Validate requires both sides of every extracted pair.
func (e ExtractedPairs) Validate() error {
	for i, p := range e.WordPairs {
		err := requireFields("word_pairs",
			field{fmt.Sprintf("wordPairs[%d].first", i), p.First},
			field{fmt.Sprintf("wordPairs[%d].second", i), p.Second},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

type field struct {
	name  string
	value string
}

func requireFields(shape string, fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ShapeError{Shape: shape, Field: f.name, Reason: "required"}
		}
	}
	return nil
}
