package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
	"github.com/heartmarshall/paindiary-backend/internal/service/report"
)

type reportService interface {
	GetReport(ctx context.Context, in report.ReportInput) (*domain.Report, error)
	ExportForClinician(ctx context.Context, in report.ReportInput) (*domain.Report, error)
	GetLimitStatuses(ctx context.Context) ([]domain.LimitEvaluation, error)
	ListExports(ctx context.Context, limit int) ([]domain.ExportRecord, error)
	SignOut(ctx context.Context) error
}

// ReportHandler serves the read-only analytics endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

// GetReport handles GET /api/v1/report.
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	in, err := parseReportQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rep, err := h.svc.GetReport(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, NewReportResponse(rep))
}

// Export handles GET /api/v1/export. Owner and clinician tokens may call it.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	in, err := parseReportQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rep, err := h.svc.ExportForClinician(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, NewReportResponse(rep))
}

// LimitStatuses handles GET /api/v1/limits/status.
func (h *ReportHandler) LimitStatuses(w http.ResponseWriter, r *http.Request) {
	evals, err := h.svc.GetLimitStatuses(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]limitStatusDTO, len(evals))
	for i, e := range evals {
		out[i] = toLimitStatusDTO(e)
	}
	writeJSON(w, http.StatusOK, out)
}

// ListExports handles GET /api/v1/exports?limit=.
func (h *ReportHandler) ListExports(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		limit = v
	}

	records, err := h.svc.ListExports(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]exportRecordDTO, len(records))
	for i, rec := range records {
		out[i] = toExportRecordDTO(rec)
	}
	writeJSON(w, http.StatusOK, out)
}

// SignOut handles POST /api/v1/session/signout.
func (h *ReportHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SignOut(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseReportQuery(r *http.Request) (report.ReportInput, error) {
	q := r.URL.Query()
	in := report.ReportInput{
		Preset: domain.Preset(q.Get("preset")),
		From:   q.Get("from"),
		To:     q.Get("to"),
	}

	var errs []domain.FieldError
	if raw := q.Get("include_entries"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "include_entries", Message: "must be a boolean"})
		}
		in.IncludeEntries = v
	}
	if raw := q.Get("redact_notes"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "redact_notes", Message: "must be a boolean"})
		}
		in.RedactNotes = &v
	}

	if len(errs) > 0 {
		return in, domain.NewValidationErrors(errs)
	}
	return in, nil
}
