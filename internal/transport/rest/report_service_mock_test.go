package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
	"github.com/heartmarshall/paindiary-backend/internal/service/report"
)

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	ExportForClinicianFunc func(ctx context.Context, in report.ReportInput) (*domain.Report, error)
	GetLimitStatusesFunc   func(ctx context.Context) ([]domain.LimitEvaluation, error)
	ListExportsFunc        func(ctx context.Context, limit int) ([]domain.ExportRecord, error)
	GetReportFunc          func(ctx context.Context, in report.ReportInput) (*domain.Report, error)
	SignOutFunc            func(ctx context.Context) error

	calls struct {
		ExportForClinician []struct {
			Ctx context.Context
			In  report.ReportInput
		}
		GetLimitStatuses []struct {
			Ctx context.Context
		}
		ListExports []struct {
			Ctx   context.Context
			Limit int
		}
		GetReport []struct {
			Ctx context.Context
			In  report.ReportInput
		}
		SignOut []struct {
			Ctx context.Context
		}
	}
	lockExportForClinician sync.RWMutex
	lockGetLimitStatuses   sync.RWMutex
	lockListExports        sync.RWMutex
	lockGetReport          sync.RWMutex
	lockSignOut            sync.RWMutex
}

func (mock *reportServiceMock) ExportForClinician(ctx context.Context, in report.ReportInput) (*domain.Report, error) {
	if mock.ExportForClinicianFunc == nil {
		panic("reportServiceMock.ExportForClinicianFunc: method is nil but reportService.ExportForClinician was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  report.ReportInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockExportForClinician.Lock()
	mock.calls.ExportForClinician = append(mock.calls.ExportForClinician, callInfo)
	mock.lockExportForClinician.Unlock()
	return mock.ExportForClinicianFunc(ctx, in)
}

func (mock *reportServiceMock) ExportForClinicianCalls() []struct {
	Ctx context.Context
	In  report.ReportInput
} {
	mock.lockExportForClinician.RLock()
	calls := mock.calls.ExportForClinician
	mock.lockExportForClinician.RUnlock()
	return calls
}

func (mock *reportServiceMock) GetLimitStatuses(ctx context.Context) ([]domain.LimitEvaluation, error) {
	if mock.GetLimitStatusesFunc == nil {
		panic("reportServiceMock.GetLimitStatusesFunc: method is nil but reportService.GetLimitStatuses was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetLimitStatuses.Lock()
	mock.calls.GetLimitStatuses = append(mock.calls.GetLimitStatuses, callInfo)
	mock.lockGetLimitStatuses.Unlock()
	return mock.GetLimitStatusesFunc(ctx)
}

func (mock *reportServiceMock) GetLimitStatusesCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetLimitStatuses.RLock()
	calls := mock.calls.GetLimitStatuses
	mock.lockGetLimitStatuses.RUnlock()
	return calls
}

func (mock *reportServiceMock) ListExports(ctx context.Context, limit int) ([]domain.ExportRecord, error) {
	if mock.ListExportsFunc == nil {
		panic("reportServiceMock.ListExportsFunc: method is nil but reportService.ListExports was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockListExports.Lock()
	mock.calls.ListExports = append(mock.calls.ListExports, callInfo)
	mock.lockListExports.Unlock()
	return mock.ListExportsFunc(ctx, limit)
}

func (mock *reportServiceMock) ListExportsCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListExports.RLock()
	calls := mock.calls.ListExports
	mock.lockListExports.RUnlock()
	return calls
}

func (mock *reportServiceMock) GetReport(ctx context.Context, in report.ReportInput) (*domain.Report, error) {
	if mock.GetReportFunc == nil {
		panic("reportServiceMock.GetReportFunc: method is nil but reportService.GetReport was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  report.ReportInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockGetReport.Lock()
	mock.calls.GetReport = append(mock.calls.GetReport, callInfo)
	mock.lockGetReport.Unlock()
	return mock.GetReportFunc(ctx, in)
}

func (mock *reportServiceMock) GetReportCalls() []struct {
	Ctx context.Context
	In  report.ReportInput
} {
	mock.lockGetReport.RLock()
	calls := mock.calls.GetReport
	mock.lockGetReport.RUnlock()
	return calls
}

func (mock *reportServiceMock) SignOut(ctx context.Context) error {
	if mock.SignOutFunc == nil {
		panic("reportServiceMock.SignOutFunc: method is nil but reportService.SignOut was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockSignOut.Lock()
	mock.calls.SignOut = append(mock.calls.SignOut, callInfo)
	mock.lockSignOut.Unlock()
	return mock.SignOutFunc(ctx)
}

func (mock *reportServiceMock) SignOutCalls() []struct {
	Ctx context.Context
} {
	mock.lockSignOut.RLock()
	calls := mock.calls.SignOut
	mock.lockSignOut.RUnlock()
	return calls
}
