package handlers

import (
	"net/http"

	"arlab_backend/internal/repositories"
	"arlab_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// LookupHandler serves the read-only reference tables (categories, roles).
// These are plain single-table reads, so the handler talks to the
// repositories directly.
type LookupHandler struct {
	categoryRepo repositories.CategoryRepository
	roleRepo     repositories.RoleRepository
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(cr repositories.CategoryRepository, rr repositories.RoleRepository) *LookupHandler {
	return &LookupHandler{categoryRepo: cr, roleRepo: rr}
}

// GetCategories handles listing the product categories.
func (h *LookupHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryRepo.GetCategories()
	if err != nil {
		utils.LogError(err, "GetCategories: Error from categoryRepo.GetCategories")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch categories.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetRoles handles listing the seeded staff roles.
func (h *LookupHandler) GetRoles(c *gin.Context) {
	roles, err := h.roleRepo.GetRoles()
	if err != nil {
		utils.LogError(err, "GetRoles: Error from roleRepo.GetRoles")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch roles.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, roles)
}
