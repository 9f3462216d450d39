package report

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

var _ weatherRepo = &weatherRepoMock{}

type weatherRepoMock struct {
	SummaryFunc func(ctx context.Context, userID uuid.UUID, window domain.Window) (*domain.WeatherSummary, error)

	calls struct {
		Summary []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Window domain.Window
		}
	}
	lockSummary sync.RWMutex
}

func (mock *weatherRepoMock) Summary(ctx context.Context, userID uuid.UUID, window domain.Window) (*domain.WeatherSummary, error) {
	if mock.SummaryFunc == nil {
		panic("weatherRepoMock.SummaryFunc: method is nil but weatherRepo.Summary was just called")
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
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx, userID, window)
}

func (mock *weatherRepoMock) SummaryCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Window domain.Window
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}
