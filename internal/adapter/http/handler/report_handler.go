package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iho/treasury/internal/adapter/http/dto"
	"github.com/iho/treasury/internal/usecase"
)

// MarginService defines the margin reporting behavior needed by ReportHandler.
type MarginService interface {
	MarginForCSS(ctx context.Context, input usecase.MarginInput) (*usecase.MarginReport, error)
}

// LiquidityService defines the liquidity projection behavior needed by ReportHandler.
type LiquidityService interface {
	LiquidityNeeds(ctx context.Context, input usecase.LiquidityInput) (*usecase.LiquidityReport, error)
}

// ReportHandler handles report requests.
type ReportHandler struct {
	marginUC    MarginService
	liquidityUC LiquidityService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(marginUC MarginService, liquidityUC LiquidityService) *ReportHandler {
	return &ReportHandler{
		marginUC:    marginUC,
		liquidityUC: liquidityUC,
	}
}

// Margin computes the margin report for one CSS.
func (h *ReportHandler) Margin(w http.ResponseWriter, r *http.Request) {
	cssID := chi.URLParam(r, "id")
	if cssID == "" {
		writeError(w, http.StatusBadRequest, "missing CSS ID", "")
		return
	}

	start, err := dto.ParseDateQuery(r.URL.Query().Get("period_start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period_start", err.Error())
		return
	}

	end, err := dto.ParseDateQuery(r.URL.Query().Get("period_end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period_end", err.Error())
		return
	}

	report, err := h.marginUC.MarginForCSS(r.Context(), usecase.MarginInput{
		CSSID:       cssID,
		PeriodStart: start,
		PeriodEnd:   end,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to compute margin", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.MarginReportFromUseCase(report))
}

// Liquidity computes the cash-needs projection.
func (h *ReportHandler) Liquidity(w http.ResponseWriter, r *http.Request) {
	var input usecase.LiquidityInput

	if val := r.URL.Query().Get("horizon_days"); val != "" {
		horizon, err := strconv.Atoi(val)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid horizon_days", err.Error())
			return
		}
		input.HorizonDays = &horizon
	}

	report, err := h.liquidityUC.LiquidityNeeds(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to project liquidity", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.LiquidityReportFromUseCase(report))
}
