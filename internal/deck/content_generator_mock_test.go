package deck

import (
	"context"
	"sync"

	"github.com/heartmarshall/dictation-builder/internal/domain"
)

var _ contentGenerator = &contentGeneratorMock{}

type contentGeneratorMock struct {
	IntroFunc    func(ctx context.Context, d domain.Dictation) (domain.IntroContent, error)
	OutroFunc    func(ctx context.Context, d domain.Dictation) (domain.OutroContent, error)
	SentenceFunc func(ctx context.Context, d domain.Dictation, pair domain.WordPair) (domain.SentenceContent, error)

	calls struct {
		Intro []struct {
			Ctx context.Context
			D   domain.Dictation
		}
		Outro []struct {
			Ctx context.Context
			D   domain.Dictation
		}
		Sentence []struct {
			Ctx  context.Context
			D    domain.Dictation
			Pair domain.WordPair
		}
	}
	lockIntro    sync.RWMutex
	lockOutro    sync.RWMutex
	lockSentence sync.RWMutex
}

func (mock *contentGeneratorMock) Intro(ctx context.Context, d domain.Dictation) (domain.IntroContent, error) {
	if mock.IntroFunc == nil {
		panic("contentGeneratorMock.IntroFunc: method is nil but contentGenerator.Intro was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.Dictation
	}{Ctx: ctx, D: d}
	mock.lockIntro.Lock()
	mock.calls.Intro = append(mock.calls.Intro, callInfo)
	mock.lockIntro.Unlock()
	return mock.IntroFunc(ctx, d)
}

func (mock *contentGeneratorMock) IntroCalls() []struct {
	Ctx context.Context
	D   domain.Dictation
} {
	mock.lockIntro.RLock()
	calls := mock.calls.Intro
	mock.lockIntro.RUnlock()
	return calls
}

func (mock *contentGeneratorMock) Outro(ctx context.Context, d domain.Dictation) (domain.OutroContent, error) {
	if mock.OutroFunc == nil {
		panic("contentGeneratorMock.OutroFunc: method is nil but contentGenerator.Outro was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.Dictation
	}{Ctx: ctx, D: d}
	mock.lockOutro.Lock()
	mock.calls.Outro = append(mock.calls.Outro, callInfo)
	mock.lockOutro.Unlock()
	return mock.OutroFunc(ctx, d)
}

func (mock *contentGeneratorMock) OutroCalls() []struct {
	Ctx context.Context
	D   domain.Dictation
} {
	mock.lockOutro.RLock()
	calls := mock.calls.Outro
	mock.lockOutro.RUnlock()
	return calls
}

func (mock *contentGeneratorMock) Sentence(ctx context.Context, d domain.Dictation, pair domain.WordPair) (domain.SentenceContent, error) {
	if mock.SentenceFunc == nil {
		panic("contentGeneratorMock.SentenceFunc: method is nil but contentGenerator.Sentence was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		D    domain.Dictation
		Pair domain.WordPair
	}{Ctx: ctx, D: d, Pair: pair}
	mock.lockSentence.Lock()
	mock.calls.Sentence = append(mock.calls.Sentence, callInfo)
	mock.lockSentence.Unlock()
	return mock.SentenceFunc(ctx, d, pair)
}

func (mock *contentGeneratorMock) SentenceCalls() []struct {
	Ctx  context.Context
	D    domain.Dictation
	Pair domain.WordPair
} {
	mock.lockSentence.RLock()
	calls := mock.calls.Sentence
	mock.lockSentence.RUnlock()
	return calls
}
