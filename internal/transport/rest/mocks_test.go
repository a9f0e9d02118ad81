package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/dictation-builder/internal/domain"
	"github.com/heartmarshall/dictation-builder/internal/service/content"
	"github.com/heartmarshall/dictation-builder/internal/service/dictation"
	"github.com/heartmarshall/dictation-builder/internal/service/extraction"
)

var (
	_ dictationService  = &dictationServiceMock{}
	_ titleService      = &titleServiceMock{}
	_ extractionService = &extractionServiceMock{}
)

type dictationServiceMock struct {
	CreateFunc           func(ctx context.Context, in dictation.CreateInput) (uuid.UUID, error)
	GetFunc              func(ctx context.Context, id string) (domain.Structure, error)
	ExampleStructureFunc func() []byte

	calls struct {
		Create []struct {
			Ctx context.Context
			In  dictation.CreateInput
		}
		Get []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockCreate sync.RWMutex
	lockGet    sync.RWMutex
}

func (mock *dictationServiceMock) Create(ctx context.Context, in dictation.CreateInput) (uuid.UUID, error) {
	if mock.CreateFunc == nil {
		panic("dictationServiceMock.CreateFunc: method is nil but dictationService.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  dictation.CreateInput
	}{Ctx: ctx, In: in}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, in)
}

func (mock *dictationServiceMock) CreateCalls() []struct {
	Ctx context.Context
	In  dictation.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *dictationServiceMock) Get(ctx context.Context, id string) (domain.Structure, error) {
	if mock.GetFunc == nil {
		panic("dictationServiceMock.GetFunc: method is nil but dictationService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *dictationServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *dictationServiceMock) ExampleStructure() []byte {
	if mock.ExampleStructureFunc == nil {
		panic("dictationServiceMock.ExampleStructureFunc: method is nil but dictationService.ExampleStructure was just called")
	}
	return mock.ExampleStructureFunc()
}

type titleServiceMock struct {
	TitleFunc func(ctx context.Context, in content.TitleInput) (string, error)

	calls struct {
		Title []struct {
			Ctx context.Context
			In  content.TitleInput
		}
	}
	lockTitle sync.RWMutex
}

func (mock *titleServiceMock) Title(ctx context.Context, in content.TitleInput) (string, error) {
	if mock.TitleFunc == nil {
		panic("titleServiceMock.TitleFunc: method is nil but titleService.Title was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  content.TitleInput
	}{Ctx: ctx, In: in}
	mock.lockTitle.Lock()
	mock.calls.Title = append(mock.calls.Title, callInfo)
	mock.lockTitle.Unlock()
	return mock.TitleFunc(ctx, in)
}

func (mock *titleServiceMock) TitleCalls() []struct {
	Ctx context.Context
	In  content.TitleInput
} {
	mock.lockTitle.RLock()
	calls := mock.calls.Title
	mock.lockTitle.RUnlock()
	return calls
}

type extractionServiceMock struct {
	ExtractFunc func(ctx context.Context, u extraction.Upload) ([]domain.WordPair, error)

	calls struct {
		Extract []struct {
			Ctx context.Context
			U   extraction.Upload
		}
	}
	lockExtract sync.RWMutex
}

func (mock *extractionServiceMock) Extract(ctx context.Context, u extraction.Upload) ([]domain.WordPair, error) {
	if mock.ExtractFunc == nil {
		panic("extractionServiceMock.ExtractFunc: method is nil but extractionService.Extract was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   extraction.Upload
	}{Ctx: ctx, U: u}
	mock.lockExtract.Lock()
	mock.calls.Extract = append(mock.calls.Extract, callInfo)
	mock.lockExtract.Unlock()
	return mock.ExtractFunc(ctx, u)
}

func (mock *extractionServiceMock) ExtractCalls() []struct {
	Ctx context.Context
	U   extraction.Upload
} {
	mock.lockExtract.RLock()
	calls := mock.calls.Extract
	mock.lockExtract.RUnlock()
	return calls
}
