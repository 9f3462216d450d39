package report

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

var _ limitRepo = &limitRepoMock{}

type limitRepoMock struct {
	ListActiveFunc func(ctx context.Context, userID uuid.UUID) ([]domain.MedicationLimit, error)

	calls struct {
		ListActive []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListActive sync.RWMutex
}

func (mock *limitRepoMock) ListActive(ctx context.Context, userID uuid.UUID) ([]domain.MedicationLimit, error) {
	if mock.ListActiveFunc == nil {
		panic("limitRepoMock.ListActiveFunc: method is nil but limitRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx, userID)
}

func (mock *limitRepoMock) ListActiveCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}
