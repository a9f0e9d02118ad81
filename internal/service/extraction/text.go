package extraction

import (
	"strings"

	"github.com/heartmarshall/dictation-builder/internal/domain"
)

// ParseText reads one pair per line, "first<delim>second". Fields beyond
// the second are ignored; lines without two non-empty fields are dropped.
func ParseText(text, delimiter string) ([]domain.WordPair, error) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	text = strings.TrimPrefix(text, "\ufeff")

	var pairs []domain.WordPair
	for _, line := range strings.Split(text, "\n") {
		fields := strings.SplitN(strings.TrimSuffix(line, "\r"), delimiter, 3)
		if len(fields) < 2 {
			continue
		}
		first := domain.NormalizeWord(fields[0])
		second := domain.NormalizeWord(fields[1])
		if first == "" || second == "" {
			continue
		}
		pairs = append(pairs, domain.WordPair{First: first, Second: second})
	}

	if len(pairs) == 0 {
		return nil, domain.ErrNoWordPairs
	}
	return pairs, nil
}
