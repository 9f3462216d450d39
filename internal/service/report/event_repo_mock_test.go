package report

import (
	"context"
	"sync"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	EarliestDateFunc func(ctx context.Context, userID uuid.UUID) (*civil.Date, error)
	ListByWindowFunc func(ctx context.Context, userID uuid.UUID, window domain.Window) ([]domain.HealthEvent, error)

	calls struct {
		EarliestDate []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListByWindow []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Window domain.Window
		}
	}
	lockEarliestDate sync.RWMutex
	lockListByWindow sync.RWMutex
}

func (mock *eventRepoMock) EarliestDate(ctx context.Context, userID uuid.UUID) (*civil.Date, error) {
	if mock.EarliestDateFunc == nil {
		panic("eventRepoMock.EarliestDateFunc: method is nil but eventRepo.EarliestDate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockEarliestDate.Lock()
	mock.calls.EarliestDate = append(mock.calls.EarliestDate, callInfo)
	mock.lockEarliestDate.Unlock()
	return mock.EarliestDateFunc(ctx, userID)
}

func (mock *eventRepoMock) EarliestDateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockEarliestDate.RLock()
	calls := mock.calls.EarliestDate
	mock.lockEarliestDate.RUnlock()
	return calls
}

func (mock *eventRepoMock) ListByWindow(ctx context.Context, userID uuid.UUID, window domain.Window) ([]domain.HealthEvent, error) {
	if mock.ListByWindowFunc == nil {
		panic("eventRepoMock.ListByWindowFunc: method is nil but eventRepo.ListByWindow was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Window domain.Window
	}{
		Ctx:    ctx,
		UserID: userID,
		Window: window,
	}
	mock.lockListByWindow.Lock()
	mock.calls.ListByWindow = append(mock.calls.ListByWindow, callInfo)
	mock.lockListByWindow.Unlock()
	return mock.ListByWindowFunc(ctx, userID, window)
}

func (mock *eventRepoMock) ListByWindowCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Window domain.Window
} {
	mock.lockListByWindow.RLock()
	calls := mock.calls.ListByWindow
	mock.lockListByWindow.RUnlock()
	return calls
}
