package report

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ExportRecord, error)
	LogFunc        func(ctx context.Context, rec domain.ExportRecord) error

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		Log []struct {
			Ctx context.Context
			Rec domain.ExportRecord
		}
	}
	lockListByUser sync.RWMutex
	lockLog        sync.RWMutex
}

func (mock *auditRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ExportRecord, error) {
	if mock.ListByUserFunc == nil {
		panic("auditRepoMock.ListByUserFunc: method is nil but auditRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{
		Ctx:    ctx,
		UserID: userID,
		Limit:  limit,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit)
}

func (mock *auditRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *auditRepoMock) Log(ctx context.Context, rec domain.ExportRecord) error {
	if mock.LogFunc == nil {
		panic("auditRepoMock.LogFunc: method is nil but auditRepo.Log was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.ExportRecord
	}{
		Ctx: ctx,
		Rec: rec,
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, rec)
}

func (mock *auditRepoMock) LogCalls() []struct {
	Ctx context.Context
	Rec domain.ExportRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}
