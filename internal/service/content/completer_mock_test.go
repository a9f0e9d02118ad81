package content

import (
	"context"
	"sync"

	"github.com/heartmarshall/dictation-builder/internal/domain"
)

var _ completer = &completerMock{}

type completerMock struct {
	CompleteFunc func(ctx context.Context, req domain.CompletionRequest) (string, error)

	calls struct {
		Complete []struct {
			Ctx context.Context
			Req domain.CompletionRequest
		}
	}
	lockComplete sync.RWMutex
}

func (mock *completerMock) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	if mock.CompleteFunc == nil {
		panic("completerMock.CompleteFunc: method is nil but completer.Complete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.CompletionRequest
	}{Ctx: ctx, Req: req}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, req)
}

func (mock *completerMock) CompleteCalls() []struct {
	Ctx context.Context
	Req domain.CompletionRequest
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}
