package domain

import (
	"strings"
)

// WordPair is one translation pair of a dictation. Sentence and ImagePrompt
// are only filled by the image extractor or the sentence generator.
type WordPair struct {
	First       string `json:"first"`
	Second      string `json:"second"`
	Sentence    string `json:"sentence,omitempty"`
	ImagePrompt string `json:"imagePrompt,omitempty"`
}

// Label renders the pair as "first - second".
func (p WordPair) Label() string {
	return p.First + " - " + p.Second
}

// IsBlank reports whether both sides of the pair are empty.
func (p WordPair) IsBlank() bool {
	return strings.TrimSpace(p.First) == "" && strings.TrimSpace(p.Second) == ""
}

// JoinPairs renders non-blank pairs as "a - b, c - d" for prompts.
func JoinPairs(pairs []WordPair) string {
	labels := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.First == "" || p.Second == "" {
			continue
		}
		labels = append(labels, p.Label())
	}
	return strings.Join(labels, ", ")
}
