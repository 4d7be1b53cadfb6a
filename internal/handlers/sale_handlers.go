package handlers

import (
	"errors"
	"net/http"

	"arlab_backend/internal/models"
	"arlab_backend/internal/services"
	"arlab_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SaleHandler holds the sale service.
type SaleHandler struct {
	saleService services.SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(ss services.SaleService) *SaleHandler {
	return &SaleHandler{saleService: ss}
}

// GetSales handles the filtered sales listing with nested line items.
// Filters: searchClient (substring over client name), dateFrom/dateTo
// (calendar dates, end inclusive).
func (h *SaleHandler) GetSales(c *gin.Context) {
	var filters models.SaleFilters
	if search := c.Query("searchClient"); search != "" {
		filters.ClientSearch = &search
	}
	if from := c.Query("dateFrom"); from != "" {
		filters.DateFrom = &from
	}
	if to := c.Query("dateTo"); to != "" {
		filters.DateTo = &to
	}

	sales, err := h.saleService.GetSales(filters)
	if err != nil {
		utils.LogError(err, "GetSales: Error from saleService.GetSales")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch sales.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, sales)
}

// CreateSale handles the atomic creation of a sale and its line items.
// Validation failures are 400; anything that breaks the transaction rolls
// everything back and answers a generic 500, with the cause logged server
// side only.
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req services.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Missing data for the sale.", err.Error()))
		return
	}

	saleID, err := h.saleService.CreateSale(req)
	if err != nil {
		if errors.Is(err, services.ErrSaleValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Missing data for the sale.", err.Error()))
			return
		}
		utils.LogError(err, "CreateSale: sale transaction failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Could not process the sale.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Sale registered successfully", "sale_id": saleID})
}
