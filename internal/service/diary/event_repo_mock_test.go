package diary

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CountFunc    func(ctx context.Context, userID uuid.UUID) (int, error)
	CreateFunc   func(ctx context.Context, ev domain.HealthEvent) (domain.HealthEvent, error)
	DeleteFunc   func(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) error
	ListPageFunc func(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.HealthEvent, int, error)

	calls struct {
		Count []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			Ev  domain.HealthEvent
		}
		Delete []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EventID uuid.UUID
		}
		ListPage []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockCount    sync.RWMutex
	lockCreate   sync.RWMutex
	lockDelete   sync.RWMutex
	lockListPage sync.RWMutex
}

func (mock *eventRepoMock) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountFunc == nil {
		panic("eventRepoMock.CountFunc: method is nil but eventRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, userID)
}

func (mock *eventRepoMock) CountCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *eventRepoMock) Create(ctx context.Context, ev domain.HealthEvent) (domain.HealthEvent, error) {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.HealthEvent
	}{
		Ctx: ctx,
		Ev:  ev,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ev)
}

func (mock *eventRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Ev  domain.HealthEvent
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *eventRepoMock) Delete(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("eventRepoMock.DeleteFunc: method is nil but eventRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EventID uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		EventID: eventID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, eventID)
}

func (mock *eventRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EventID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *eventRepoMock) ListPage(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.HealthEvent, int, error) {
	if mock.ListPageFunc == nil {
		panic("eventRepoMock.ListPageFunc: method is nil but eventRepo.ListPage was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListPage.Lock()
	mock.calls.ListPage = append(mock.calls.ListPage, callInfo)
	mock.lockListPage.Unlock()
	return mock.ListPageFunc(ctx, userID, limit, offset)
}

func (mock *eventRepoMock) ListPageCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListPage.RLock()
	calls := mock.calls.ListPage
	mock.lockListPage.RUnlock()
	return calls
}
