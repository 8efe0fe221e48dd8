package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/treasury/internal/adapter/http/dto"
	"github.com/iho/treasury/internal/domain"
	"github.com/iho/treasury/internal/usecase"
)

// ScheduleService defines the behavior needed by AdvanceHandler.
type ScheduleService interface {
	ListAdvanceSchedule(ctx context.Context, input usecase.ListAdvanceScheduleInput) ([]*domain.InterestEntry, error)
}

// AdvanceHandler handles advance-related HTTP requests.
type AdvanceHandler struct {
	ledgerUC ScheduleService
}

// NewAdvanceHandler creates a new AdvanceHandler.
func NewAdvanceHandler(ledgerUC ScheduleService) *AdvanceHandler {
	return &AdvanceHandler{ledgerUC: ledgerUC}
}

// ListInterest lists the daily interest entries of an advance.
func (h *AdvanceHandler) ListInterest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing advance ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	entries, err := h.ledgerUC.ListAdvanceSchedule(r.Context(), usecase.ListAdvanceScheduleInput{
		AdvanceID: id,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list interest entries", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ListInterestEntriesResponse{
		Entries: dto.InterestEntriesFromDomain(entries),
		Count:   len(entries),
	})
}
