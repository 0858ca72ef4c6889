package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/kampusadmin/dashboard-api/internal/domain/finance"
	"github.com/kampusadmin/dashboard-api/internal/httperr"
	ucFinance "github.com/kampusadmin/dashboard-api/internal/usecase/finance"
)

// ======================================================
// HANDLER
// ======================================================

type FinancialHandler struct {
	getFinancials       *ucFinance.GetFinancials
	getPartnershipStats *ucFinance.GetPartnershipStats
	now                 func() time.Time
}

func NewFinancialHandler(
	getFinancials *ucFinance.GetFinancials,
	getPartnershipStats *ucFinance.GetPartnershipStats,
	now func() time.Time,
) *FinancialHandler {
	return &FinancialHandler{
		getFinancials:       getFinancials,
		getPartnershipStats: getPartnershipStats,
		now:                 now,
	}
}

// ======================================================
// FINANCIALS
// ======================================================

func (h *FinancialHandler) GetFinancials(c *gin.Context) {
	window, err := domain.ParseWindow(c.Query("window"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidationError, "window must be daily, weekly, monthly or yearly.")
		return
	}

	report, err := h.getFinancials.Execute(c.Request.Context(), h.now(), window)
	if err != nil {
		httperr.Internal(c, "failed_to_build_financials", "Could not build financial report.")
		return
	}

	c.JSON(http.StatusOK, report)
}

// ======================================================
// PARTNERSHIP STATS
// ======================================================

func (h *FinancialHandler) GetPartnershipStats(c *gin.Context) {
	stats, err := h.getPartnershipStats.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_build_stats", "Could not build partnership stats.")
		return
	}

	c.JSON(http.StatusOK, stats)
}
