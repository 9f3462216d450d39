package diary

import (
	"sync"

	"github.com/google/uuid"
)

var _ trackingCache = &trackingCacheMock{}

type trackingCacheMock struct {
	ForgetFunc func(userID uuid.UUID)

	calls struct {
		Forget []struct {
			UserID uuid.UUID
		}
	}
	lockForget sync.RWMutex
}

func (mock *trackingCacheMock) Forget(userID uuid.UUID) {
	if mock.ForgetFunc == nil {
		panic("trackingCacheMock.ForgetFunc: method is nil but trackingCache.Forget was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{
		UserID: userID,
	}
	mock.lockForget.Lock()
	mock.calls.Forget = append(mock.calls.Forget, callInfo)
	mock.lockForget.Unlock()
	mock.ForgetFunc(userID)
}

func (mock *trackingCacheMock) ForgetCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockForget.RLock()
	calls := mock.calls.Forget
	mock.lockForget.RUnlock()
	return calls
}
