package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
	"github.com/heartmarshall/paindiary-backend/internal/ingest"
	"github.com/heartmarshall/paindiary-backend/internal/service/diary"
)

type diaryService interface {
	CreateEntry(ctx context.Context, in ingest.EventInput) (*domain.HealthEvent, error)
	ListEntries(ctx context.Context, in diary.ListEntriesInput) (*diary.EntryPage, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) error
	ListLimits(ctx context.Context) ([]domain.MedicationLimit, error)
	SaveLimit(ctx context.Context, in diary.SaveLimitInput) (*domain.MedicationLimit, error)
}

// DiaryHandler serves entry and limit management endpoints.
type DiaryHandler struct {
	svc diaryService
	log *slog.Logger
}

// NewDiaryHandler creates a DiaryHandler.
func NewDiaryHandler(svc diaryService, logger *slog.Logger) *DiaryHandler {
	return &DiaryHandler{svc: svc, log: logger.With("handler", "diary")}
}

// CreateEntry handles POST /api/v1/entries.
func (h *DiaryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var in ingest.EventInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ev, err := h.svc.CreateEntry(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryDTO(*ev))
}

// ListEntries handles GET /api/v1/entries?limit=&offset=.
func (h *DiaryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	var (
		in   diary.ListEntriesInput
		errs []domain.FieldError
	)
	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		}
		in.Limit = v
	}
	if raw := q.Get("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be an integer"})
		}
		in.Offset = v
	}
	if len(errs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	page, err := h.svc.ListEntries(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryPageResponse(page))
}

// DeleteEntry handles DELETE /api/v1/entries/{id}.
func (h *DiaryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListLimits handles GET /api/v1/limits.
func (h *DiaryHandler) ListLimits(w http.ResponseWriter, r *http.Request) {
	limits, err := h.svc.ListLimits(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]limitDTO, len(limits))
	for i, l := range limits {
		out[i] = toLimitDTO(l)
	}
	writeJSON(w, http.StatusOK, out)
}

// SaveLimit handles PUT /api/v1/limits.
func (h *DiaryHandler) SaveLimit(w http.ResponseWriter, r *http.Request) {
	var req saveLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	l, err := h.svc.SaveLimit(r.Context(), diary.SaveLimitInput{
		MedicationName: req.MedicationName,
		LimitCount:     req.LimitCount,
		PeriodType:     domain.PeriodType(req.PeriodType),
		IsActive:       req.IsActive,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLimitDTO(*l))
}
