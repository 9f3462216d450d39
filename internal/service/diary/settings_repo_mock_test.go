package diary

import (
	"context"
	"sync"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	LockUserFunc            func(ctx context.Context, userID uuid.UUID) error
	EnsureTrackingStartFunc func(ctx context.Context, userID uuid.UUID, day civil.Date) error

	calls struct {
		LockUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		EnsureTrackingStart []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Day    civil.Date
		}
	}
	lockLockUser            sync.RWMutex
	lockEnsureTrackingStart sync.RWMutex
}

func (mock *settingsRepoMock) LockUser(ctx context.Context, userID uuid.UUID) error {
	if mock.LockUserFunc == nil {
		panic("settingsRepoMock.LockUserFunc: method is nil but settingsRepo.LockUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockLockUser.Lock()
	mock.calls.LockUser = append(mock.calls.LockUser, callInfo)
	mock.lockLockUser.Unlock()
	return mock.LockUserFunc(ctx, userID)
}

func (mock *settingsRepoMock) LockUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockLockUser.RLock()
	calls := mock.calls.LockUser
	mock.lockLockUser.RUnlock()
	return calls
}

func (mock *settingsRepoMock) EnsureTrackingStart(ctx context.Context, userID uuid.UUID, day civil.Date) error {
	if mock.EnsureTrackingStartFunc == nil {
		panic("settingsRepoMock.EnsureTrackingStartFunc: method is nil but settingsRepo.EnsureTrackingStart was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Day    civil.Date
	}{
		Ctx:    ctx,
		UserID: userID,
		Day:    day,
	}
	mock.lockEnsureTrackingStart.Lock()
	mock.calls.EnsureTrackingStart = append(mock.calls.EnsureTrackingStart, callInfo)
	mock.lockEnsureTrackingStart.Unlock()
	return mock.EnsureTrackingStartFunc(ctx, userID, day)
}

func (mock *settingsRepoMock) EnsureTrackingStartCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Day    civil.Date
} {
	mock.lockEnsureTrackingStart.RLock()
	calls := mock.calls.EnsureTrackingStart
	mock.lockEnsureTrackingStart.RUnlock()
	return calls
}
