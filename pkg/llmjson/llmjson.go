// Package llmjson pulls JSON payloads out of free-form model replies.
package llmjson

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON is returned when a reply holds no JSON object or array.
var ErrNoJSON = errors.New("no JSON object found in response")

// Extract returns the outermost JSON object or array in s: from the first
// '{' or '[' to the matching last '}' or ']'. Markdown fences and prose
// around the payload are ignored.
func Extract(s string) (string, error) {
	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return "", ErrNoJSON
	}
	closing := "}"
	if s[start] == '[' {
		closing = "]"
	}
	end := strings.LastIndex(s, closing)
	if end <= start {
		return "", ErrNoJSON
	}
	return s[start : end+1], nil
}

// Decode extracts the JSON payload of s into v.
func Decode(s string, v any) error {
	raw, err := Extract(s)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), v)
}
