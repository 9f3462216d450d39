package report

import (
	"context"
	"sync"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetTrackingStartFunc func(ctx context.Context, userID uuid.UUID) (*civil.Date, error)

	calls struct {
		GetTrackingStart []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetTrackingStart sync.RWMutex
}

func (mock *settingsRepoMock) GetTrackingStart(ctx context.Context, userID uuid.UUID) (*civil.Date, error) {
	if mock.GetTrackingStartFunc == nil {
		panic("settingsRepoMock.GetTrackingStartFunc: method is nil but settingsRepo.GetTrackingStart was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetTrackingStart.Lock()
	mock.calls.GetTrackingStart = append(mock.calls.GetTrackingStart, callInfo)
	mock.lockGetTrackingStart.Unlock()
	return mock.GetTrackingStartFunc(ctx, userID)
}

func (mock *settingsRepoMock) GetTrackingStartCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetTrackingStart.RLock()
	calls := mock.calls.GetTrackingStart
	mock.lockGetTrackingStart.RUnlock()
	return calls
}
