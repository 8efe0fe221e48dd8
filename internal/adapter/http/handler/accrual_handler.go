package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/iho/treasury/internal/adapter/http/dto"
	"github.com/iho/treasury/internal/usecase"
)

// AccrualService defines the behavior needed by AccrualHandler.
type AccrualService interface {
	AccrueAdvances(ctx context.Context, input usecase.AccrueInput) (*usecase.AccrualRunResult, error)
	AccrueLoans(ctx context.Context, input usecase.AccrueInput) (*usecase.AccrualRunResult, error)
}

// AccrualHandler handles accrual run requests.
type AccrualHandler struct {
	accrualUC AccrualService
}

// NewAccrualHandler creates a new AccrualHandler.
func NewAccrualHandler(accrualUC AccrualService) *AccrualHandler {
	return &AccrualHandler{accrualUC: accrualUC}
}

// RunAdvances triggers the daily advance accrual.
func (h *AccrualHandler) RunAdvances(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, h.accrualUC.AccrueAdvances)
}

// RunLoans triggers the daily loan accrual.
func (h *AccrualHandler) RunLoans(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, h.accrualUC.AccrueLoans)
}

func (h *AccrualHandler) run(w http.ResponseWriter, r *http.Request, accrue func(context.Context, usecase.AccrueInput) (*usecase.AccrualRunResult, error)) {
	var req dto.RunAccrualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	result, err := accrue(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "accrual run failed", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.AccrualRunFromResult(result))
}
