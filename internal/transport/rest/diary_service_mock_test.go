package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
	"github.com/heartmarshall/paindiary-backend/internal/ingest"
	"github.com/heartmarshall/paindiary-backend/internal/service/diary"
)

var _ diaryService = &diaryServiceMock{}

type diaryServiceMock struct {
	CreateEntryFunc func(ctx context.Context, in ingest.EventInput) (*domain.HealthEvent, error)
	DeleteEntryFunc func(ctx context.Context, entryID uuid.UUID) error
	ListEntriesFunc func(ctx context.Context, in diary.ListEntriesInput) (*diary.EntryPage, error)
	ListLimitsFunc  func(ctx context.Context) ([]domain.MedicationLimit, error)
	SaveLimitFunc   func(ctx context.Context, in diary.SaveLimitInput) (*domain.MedicationLimit, error)

	calls struct {
		CreateEntry []struct {
			Ctx context.Context
			In  ingest.EventInput
		}
		DeleteEntry []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		ListEntries []struct {
			Ctx context.Context
			In  diary.ListEntriesInput
		}
		ListLimits []struct {
			Ctx context.Context
		}
		SaveLimit []struct {
			Ctx context.Context
			In  diary.SaveLimitInput
		}
	}
	lockCreateEntry sync.RWMutex
	lockDeleteEntry sync.RWMutex
	lockListEntries sync.RWMutex
	lockListLimits  sync.RWMutex
	lockSaveLimit   sync.RWMutex
}

func (mock *diaryServiceMock) CreateEntry(ctx context.Context, in ingest.EventInput) (*domain.HealthEvent, error) {
	if mock.CreateEntryFunc == nil {
		panic("diaryServiceMock.CreateEntryFunc: method is nil but diaryService.CreateEntry was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  ingest.EventInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockCreateEntry.Lock()
	mock.calls.CreateEntry = append(mock.calls.CreateEntry, callInfo)
	mock.lockCreateEntry.Unlock()
	return mock.CreateEntryFunc(ctx, in)
}

func (mock *diaryServiceMock) CreateEntryCalls() []struct {
	Ctx context.Context
	In  ingest.EventInput
} {
	mock.lockCreateEntry.RLock()
	calls := mock.calls.CreateEntry
	mock.lockCreateEntry.RUnlock()
	return calls
}

func (mock *diaryServiceMock) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	if mock.DeleteEntryFunc == nil {
		panic("diaryServiceMock.DeleteEntryFunc: method is nil but diaryService.DeleteEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{
		Ctx:     ctx,
		EntryID: entryID,
	}
	mock.lockDeleteEntry.Lock()
	mock.calls.DeleteEntry = append(mock.calls.DeleteEntry, callInfo)
	mock.lockDeleteEntry.Unlock()
	return mock.DeleteEntryFunc(ctx, entryID)
}

func (mock *diaryServiceMock) DeleteEntryCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	mock.lockDeleteEntry.RLock()
	calls := mock.calls.DeleteEntry
	mock.lockDeleteEntry.RUnlock()
	return calls
}

func (mock *diaryServiceMock) ListEntries(ctx context.Context, in diary.ListEntriesInput) (*diary.EntryPage, error) {
	if mock.ListEntriesFunc == nil {
		panic("diaryServiceMock.ListEntriesFunc: method is nil but diaryService.ListEntries was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  diary.ListEntriesInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockListEntries.Lock()
	mock.calls.ListEntries = append(mock.calls.ListEntries, callInfo)
	mock.lockListEntries.Unlock()
	return mock.ListEntriesFunc(ctx, in)
}

func (mock *diaryServiceMock) ListEntriesCalls() []struct {
	Ctx context.Context
	In  diary.ListEntriesInput
} {
	mock.lockListEntries.RLock()
	calls := mock.calls.ListEntries
	mock.lockListEntries.RUnlock()
	return calls
}

func (mock *diaryServiceMock) ListLimits(ctx context.Context) ([]domain.MedicationLimit, error) {
	if mock.ListLimitsFunc == nil {
		panic("diaryServiceMock.ListLimitsFunc: method is nil but diaryService.ListLimits was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListLimits.Lock()
	mock.calls.ListLimits = append(mock.calls.ListLimits, callInfo)
	mock.lockListLimits.Unlock()
	return mock.ListLimitsFunc(ctx)
}

func (mock *diaryServiceMock) ListLimitsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListLimits.RLock()
	calls := mock.calls.ListLimits
	mock.lockListLimits.RUnlock()
	return calls
}

func (mock *diaryServiceMock) SaveLimit(ctx context.Context, in diary.SaveLimitInput) (*domain.MedicationLimit, error) {
	if mock.SaveLimitFunc == nil {
		panic("diaryServiceMock.SaveLimitFunc: method is nil but diaryService.SaveLimit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  diary.SaveLimitInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockSaveLimit.Lock()
	mock.calls.SaveLimit = append(mock.calls.SaveLimit, callInfo)
	mock.lockSaveLimit.Unlock()
	return mock.SaveLimitFunc(ctx, in)
}

func (mock *diaryServiceMock) SaveLimitCalls() []struct {
	Ctx context.Context
	In  diary.SaveLimitInput
} {
	mock.lockSaveLimit.RLock()
	calls := mock.calls.SaveLimit
	mock.lockSaveLimit.RUnlock()
	return calls
}
