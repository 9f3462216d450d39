package report

import (
	"sync"
	"time"
)

var _ metricsRecorder = &metricsRecorderMock{}

type metricsRecorderMock struct {
	LimitEvaluatedFunc func(status string)
	ObserveReportFunc  func(kind string, d time.Duration, calendarDays int, overuse bool, err error)

	calls struct {
		LimitEvaluated []struct {
			Status string
		}
		ObserveReport []struct {
			Kind         string
			D            time.Duration
			CalendarDays int
			Overuse      bool
			Err          error
		}
	}
	lockLimitEvaluated sync.RWMutex
	lockObserveReport  sync.RWMutex
}

func (mock *metricsRecorderMock) LimitEvaluated(status string) {
	if mock.LimitEvaluatedFunc == nil {
		panic("metricsRecorderMock.LimitEvaluatedFunc: method is nil but metricsRecorder.LimitEvaluated was just called")
	}
	callInfo := struct {
		Status string
	}{
		Status: status,
	}
	mock.lockLimitEvaluated.Lock()
	mock.calls.LimitEvaluated = append(mock.calls.LimitEvaluated, callInfo)
	mock.lockLimitEvaluated.Unlock()
	mock.LimitEvaluatedFunc(status)
}

func (mock *metricsRecorderMock) LimitEvaluatedCalls() []struct {
	Status string
} {
	mock.lockLimitEvaluated.RLock()
	calls := mock.calls.LimitEvaluated
	mock.lockLimitEvaluated.RUnlock()
	return calls
}

func (mock *metricsRecorderMock) ObserveReport(kind string, d time.Duration, calendarDays int, overuse bool, err error) {
	if mock.ObserveReportFunc == nil {
		panic("metricsRecorderMock.ObserveReportFunc: method is nil but metricsRecorder.ObserveReport was just called")
	}
	callInfo := struct {
		Kind         string
		D            time.Duration
		CalendarDays int
		Overuse      bool
		Err          error
	}{
		Kind:         kind,
		D:            d,
		CalendarDays: calendarDays,
		Overuse:      overuse,
		Err:          err,
	}
	mock.lockObserveReport.Lock()
	mock.calls.ObserveReport = append(mock.calls.ObserveReport, callInfo)
	mock.lockObserveReport.Unlock()
	mock.ObserveReportFunc(kind, d, calendarDays, overuse, err)
}

func (mock *metricsRecorderMock) ObserveReportCalls() []struct {
	Kind         string
	D            time.Duration
	CalendarDays int
	Overuse      bool
	Err          error
} {
	mock.lockObserveReport.RLock()
	calls := mock.calls.ObserveReport
	mock.lockObserveReport.RUnlock()
	return calls
}
