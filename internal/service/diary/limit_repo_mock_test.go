package diary

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

var _ limitRepo = &limitRepoMock{}

type limitRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.MedicationLimit, error)
	UpsertFunc     func(ctx context.Context, l domain.MedicationLimit) (domain.MedicationLimit, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Upsert []struct {
			Ctx context.Context
			L   domain.MedicationLimit
		}
	}
	lockListByUser sync.RWMutex
	lockUpsert     sync.RWMutex
}

func (mock *limitRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.MedicationLimit, error) {
	if mock.ListByUserFunc == nil {
		panic("limitRepoMock.ListByUserFunc: method is nil but limitRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *limitRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *limitRepoMock) Upsert(ctx context.Context, l domain.MedicationLimit) (domain.MedicationLimit, error) {
	if mock.UpsertFunc == nil {
		panic("limitRepoMock.UpsertFunc: method is nil but limitRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.MedicationLimit
	}{
		Ctx: ctx,
		L:   l,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, l)
}

func (mock *limitRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	L   domain.MedicationLimit
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
