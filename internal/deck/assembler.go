package deck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dictation-builder/internal/domain"
)

// contentGenerator produces the generated copy of a deck.
type contentGenerator interface {
	Intro(ctx context.Context, d domain.Dictation) (domain.IntroContent, error)
	Outro(ctx context.Context, d domain.Dictation) (domain.OutroContent, error)
	Sentence(ctx context.Context, d domain.Dictation, pair domain.WordPair) (domain.SentenceContent, error)
}

// Options tune slide assembly.
type Options struct {
	Layout Layout
	// ExampleSentences requests a sentence for pairs that have none.
	ExampleSentences bool
}

// Assembler builds player-ready structure documents from a Template.
type Assembler struct {
	log  *slog.Logger
	tmpl *Template
	gen  contentGenerator
	opts Options
}

// NewAssembler creates an Assembler.
func NewAssembler(log *slog.Logger, tmpl *Template, gen contentGenerator, opts Options) *Assembler {
	if opts.Layout == "" {
		opts.Layout = LayoutThreeColumn
	}
	return &Assembler{
		log:  log.With("service", "deck"),
		tmpl: tmpl,
		gen:  gen,
		opts: opts,
	}
}

// Assemble returns a new structure with slides [intro, one per pair, outro].
// Generator calls run sequentially: intro, outro, then missing sentences.
// Any failure aborts the whole document.
func (a *Assembler) Assemble(ctx context.Context, d domain.Dictation) (domain.Structure, error) {
	intro, err := a.gen.Intro(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("assemble: intro: %w", err)
	}
	outro, err := a.gen.Outro(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("assemble: outro: %w", err)
	}

	doc, err := a.tmpl.Document()
	if err != nil {
		return nil, err
	}

	slides := make([]any, 0, len(d.WordPairs)+2)

	introSlide, err := a.introSlide(d, intro)
	if err != nil {
		return nil, err
	}
	slides = append(slides, introSlide)

	for i, pair := range d.WordPairs {
		s, err := a.dictationSlide(ctx, d, pair)
		if err != nil {
			return nil, fmt.Errorf("assemble: pair %d: %w", i, err)
		}
		slides = append(slides, s)
	}

	outroSlide, err := a.tmpl.slide(SlideOutro)
	if err != nil {
		return nil, err
	}
	setInfo(outroSlide, LayerCongrats, renderCongrats(Direction(d.FirstLanguage), outro.CongratsMessage))
	slides = append(slides, outroSlide)

	st := domain.Structure(doc)
	if err := setSlides(st, slides); err != nil {
		return nil, err
	}
	fields := st.AlbumFields()
	fields["name"] = d.Title
	if intro.IntroContent != "" {
		fields["description"] = intro.IntroContent
	} else {
		fields["description"] = d.DefaultDescription()
	}

	a.log.DebugContext(ctx, "structure assembled", slog.Int("slides", len(slides)))
	return st, nil
}

func (a *Assembler) introSlide(d domain.Dictation, intro domain.IntroContent) (map[string]any, error) {
	s, err := a.tmpl.slide(SlideIntro)
	if err != nil {
		return nil, err
	}
	dir := Direction(d.FirstLanguage)
	setInfo(s, LayerTitle, renderTitle(dir, d.Title))
	setInfo(s, LayerIntro, renderText(dir, intro.IntroContent))

	cols := a.opts.Layout.Columns(len(d.WordPairs))
	offset := 0
	for i, id := range columnLayers {
		if cols[i] == 0 {
			removeLayer(s, id)
			continue
		}
		setInfo(s, id, renderPairs(dir, d.WordPairs[offset:offset+cols[i]]))
		offset += cols[i]
	}
	return s, nil
}

func (a *Assembler) dictationSlide(ctx context.Context, d domain.Dictation, pair domain.WordPair) (map[string]any, error) {
	s, err := a.tmpl.slide(SlideDictation)
	if err != nil {
		return nil, err
	}
	setInfo(s, LayerPrompt, renderPrompt(Direction(d.FirstLanguage), pair.First))
	setAnswers(s, pair.Second)

	sentence := pair.Sentence
	if sentence == "" && a.opts.ExampleSentences && !pair.IsBlank() {
		sc, err := a.gen.Sentence(ctx, d, pair)
		if err != nil {
			return nil, fmt.Errorf("sentence: %w", err)
		}
		sentence = sc.Sentence
	}
	if sentence == "" {
		removeLayer(s, LayerSentence)
	} else {
		setInfo(s, LayerSentence, renderText(Direction(d.SecondLanguage), sentence))
	}
	return s, nil
}

func setSlides(st domain.Structure, slides []any) error {
	data, _ := st["data"].(map[string]any)
	structure, ok := data["structure"].(map[string]any)
	if !ok {
		return fmt.Errorf("%w: missing data.structure", ErrTemplate)
	}
	structure["slides"] = slides
	return nil
}
