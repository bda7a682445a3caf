package handlers

import (
	"net/http"

	"github.com/LJMarquez/talentlink-backend/internal/services"
	"github.com/LJMarquez/talentlink-backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/user-apply/:database/:collection", h.UserApply)
	r.POST("/update-application-status/:database/:collection", h.UpdateApplicationStatus)
}

func (h *ApplicationHandler) UserApply(c *gin.Context) {
	if _, ok := h.CheckStoreParams(c); !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if _, err := h.applicationService.SubmitApplication(c.Request.Context(), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Job application submitted successfully"})
}

// UpdateApplicationStatus returns the full updated employer document so the
// employer dashboard can refresh without a second fetch.
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	if _, ok := h.CheckStoreParams(c); !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	employer, err := h.applicationService.UpdateApplicationStatus(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employer)
}
