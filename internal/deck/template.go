package deck

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Slide ids the template must define.
const (
	SlideIntro     = "intro"
	SlideDictation = "dictation"
	SlideOutro     = "outro"
)

// Layer ids the assembler writes into.
const (
	LayerTitle    = "title"
	LayerIntro    = "intro"
	LayerPrompt   = "prompt"
	LayerSentence = "sentence"
	LayerCongrats = "congrats"
)

// columnLayers are the intro layers receiving the word list, in order.
var columnLayers = []string{"words-1", "words-2", "words-3"}

// ErrTemplate marks a template document the assembler cannot work with.
var ErrTemplate = errors.New("invalid dictation template")

//go:embed dictation_structure.json
var defaultTemplate []byte

// Template is the parsed slide template. It keeps only raw JSON, so every
// call to Document or a slide accessor returns a fresh, unshared value.
type Template struct {
	raw    []byte
	slides map[string]json.RawMessage
}

// DefaultTemplate returns the template compiled into the binary.
func DefaultTemplate() (*Template, error) {
	return ParseTemplate(defaultTemplate)
}

// LoadTemplate reads a template from path; an empty path selects the
// embedded default.
func LoadTemplate(path string) (*Template, error) {
	if path == "" {
		return DefaultTemplate()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	return ParseTemplate(raw)
}

// ParseTemplate validates raw and returns an immutable Template.
func ParseTemplate(raw []byte) (*Template, error) {
	var doc struct {
		Data struct {
			AlbumStore struct {
				Album struct {
					Fields map[string]json.RawMessage `json:"fields"`
				} `json:"album"`
			} `json:"album_store"`
			Structure struct {
				Slides []json.RawMessage `json:"slides"`
			} `json:"structure"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	if doc.Data.AlbumStore.Album.Fields == nil {
		return nil, fmt.Errorf("%w: missing data.album_store.album.fields", ErrTemplate)
	}

	slides := make(map[string]json.RawMessage, len(doc.Data.Structure.Slides))
	for i, s := range doc.Data.Structure.Slides {
		var head struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(s, &head); err != nil {
			return nil, fmt.Errorf("%w: slide %d: %v", ErrTemplate, i, err)
		}
		if head.ID != "" {
			slides[head.ID] = s
		}
	}

	t := &Template{raw: bytes.Clone(raw), slides: slides}
	if err := t.check(); err != nil {
		return nil, err
	}
	return t, nil
}

// check verifies every slot the assembler writes into exists.
func (t *Template) check() error {
	required := map[string][]string{
		SlideIntro:     {LayerTitle, LayerIntro, columnLayers[0]},
		SlideDictation: {LayerPrompt},
		SlideOutro:     {LayerCongrats},
	}
	for slideID, layerIDs := range required {
		slide, err := t.slide(slideID)
		if err != nil {
			return err
		}
		for _, id := range layerIDs {
			if findLayer(slide, id) == nil {
				return fmt.Errorf("%w: slide %q has no layer %q", ErrTemplate, slideID, id)
			}
		}
	}

	dict, _ := t.slide(SlideDictation)
	if answerSettings(dict) == nil {
		return fmt.Errorf("%w: slide %q has no activities[0].shapes[0].settings", ErrTemplate, SlideDictation)
	}
	return nil
}

// Raw returns a copy of the template bytes.
func (t *Template) Raw() []byte {
	return bytes.Clone(t.raw)
}

// Document decodes a fresh copy of the whole template.
func (t *Template) Document() (map[string]any, error) {
	return decodeObject(t.raw)
}

// slide decodes a fresh copy of the slide with the given id.
func (t *Template) slide(id string) (map[string]any, error) {
	raw, ok := t.slides[id]
	if !ok {
		return nil, fmt.Errorf("%w: missing slide %q", ErrTemplate, id)
	}
	return decodeObject(raw)
}

func decodeObject(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	return obj, nil
}
