package diary

import (
	"sync"
)

var _ entryCounter = &entryCounterMock{}

type entryCounterMock struct {
	EntryCreatedFunc func()

	calls struct {
		EntryCreated []struct{}
	}
	lockEntryCreated sync.RWMutex
}

func (mock *entryCounterMock) EntryCreated() {
	if mock.EntryCreatedFunc == nil {
		panic("entryCounterMock.EntryCreatedFunc: method is nil but entryCounter.EntryCreated was just called")
	}
	mock.lockEntryCreated.Lock()
	mock.calls.EntryCreated = append(mock.calls.EntryCreated, struct{}{})
	mock.lockEntryCreated.Unlock()
	mock.EntryCreatedFunc()
}

func (mock *entryCounterMock) EntryCreatedCalls() []struct{} {
	mock.lockEntryCreated.RLock()
	calls := mock.calls.EntryCreated
	mock.lockEntryCreated.RUnlock()
	return calls
}
