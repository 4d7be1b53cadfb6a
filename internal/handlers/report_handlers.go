package handlers

import (
	"net/http"

	"arlab_backend/internal/repositories"
	"arlab_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// topProductsLimit caps the best-seller list shown on the dashboard.
const topProductsLimit = 5

// ReportHandler serves the read-only aggregation endpoints. The queries are
// single statements, so the handler talks to the repository directly.
type ReportHandler struct {
	reportRepo repositories.ReportRepository
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rr repositories.ReportRepository) *ReportHandler {
	return &ReportHandler{reportRepo: rr}
}

// GetSummary handles the global KPI report: sale count, revenue, client count.
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.reportRepo.GetSummary()
	if err != nil {
		utils.LogError(err, "GetSummary: Error from reportRepo.GetSummary")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute summary report.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetTopProducts handles the top-5-by-quantity report.
func (h *ReportHandler) GetTopProducts(c *gin.Context) {
	top, err := h.reportRepo.GetTopProducts(topProductsLimit)
	if err != nil {
		utils.LogError(err, "GetTopProducts: Error from reportRepo.GetTopProducts")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute top products report.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, top)
}

// GetWeeklySales handles the trailing-week daily buckets. A week with no
// sales is an empty list, not an error.
func (h *ReportHandler) GetWeeklySales(c *gin.Context) {
	daily, err := h.reportRepo.GetWeeklySales()
	if err != nil {
		utils.LogError(err, "GetWeeklySales: Error from reportRepo.GetWeeklySales")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute weekly sales report.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, daily)
}
