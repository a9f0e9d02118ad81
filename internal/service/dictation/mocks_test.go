package dictation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/dictation-builder/internal/domain"
	"github.com/heartmarshall/dictation-builder/internal/service/content"
)

var (
	_ assembler      = &assemblerMock{}
	_ titleGenerator = &titleGeneratorMock{}
	_ dictationStore = &dictationStoreMock{}
)

type assemblerMock struct {
	AssembleFunc func(ctx context.Context, d domain.Dictation) (domain.Structure, error)

	calls struct {
		Assemble []struct {
			Ctx context.Context
			D   domain.Dictation
		}
	}
	lockAssemble sync.RWMutex
}

func (mock *assemblerMock) Assemble(ctx context.Context, d domain.Dictation) (domain.Structure, error) {
	if mock.AssembleFunc == nil {
		panic("assemblerMock.AssembleFunc: method is nil but assembler.Assemble was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.Dictation
	}{Ctx: ctx, D: d}
	mock.lockAssemble.Lock()
	mock.calls.Assemble = append(mock.calls.Assemble, callInfo)
	mock.lockAssemble.Unlock()
	return mock.AssembleFunc(ctx, d)
}

func (mock *assemblerMock) AssembleCalls() []struct {
	Ctx context.Context
	D   domain.Dictation
} {
	mock.lockAssemble.RLock()
	calls := mock.calls.Assemble
	mock.lockAssemble.RUnlock()
	return calls
}

type titleGeneratorMock struct {
	TitleFunc func(ctx context.Context, in content.TitleInput) (string, error)

	calls struct {
		Title []struct {
			Ctx context.Context
			In  content.TitleInput
		}
	}
	lockTitle sync.RWMutex
}

func (mock *titleGeneratorMock) Title(ctx context.Context, in content.TitleInput) (string, error) {
	if mock.TitleFunc == nil {
		panic("titleGeneratorMock.TitleFunc: method is nil but titleGenerator.Title was just called")
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

func (mock *titleGeneratorMock) TitleCalls() []struct {
	Ctx context.Context
	In  content.TitleInput
} {
	mock.lockTitle.RLock()
	calls := mock.calls.Title
	mock.lockTitle.RUnlock()
	return calls
}

type dictationStoreMock struct {
	PutFunc func(ctx context.Context, id uuid.UUID, st domain.Structure) error
	GetFunc func(ctx context.Context, id uuid.UUID) (domain.Structure, error)

	calls struct {
		Put []struct {
			Ctx context.Context
			ID  uuid.UUID
			St  domain.Structure
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockPut sync.RWMutex
	lockGet sync.RWMutex
}

func (mock *dictationStoreMock) Put(ctx context.Context, id uuid.UUID, st domain.Structure) error {
	if mock.PutFunc == nil {
		panic("dictationStoreMock.PutFunc: method is nil but dictationStore.Put was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		St  domain.Structure
	}{Ctx: ctx, ID: id, St: st}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, id, st)
}

func (mock *dictationStoreMock) PutCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	St  domain.Structure
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *dictationStoreMock) Get(ctx context.Context, id uuid.UUID) (domain.Structure, error) {
	if mock.GetFunc == nil {
		panic("dictationStoreMock.GetFunc: method is nil but dictationStore.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *dictationStoreMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

type rawTemplate []byte

func (t rawTemplate) Raw() []byte { return []byte(t) }
