package handlers

import (
	"net/http"

	"github.com/LJMarquez/talentlink-backend/internal/models"
	"github.com/LJMarquez/talentlink-backend/internal/services"
	"github.com/LJMarquez/talentlink-backend/internal/services/dto"
	"github.com/LJMarquez/talentlink-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService *services.JobService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/post-job/:database/:collection", h.PostJob)
	r.POST("/approve-pending-job/:database/:collection", h.ApprovePendingJob)
	r.DELETE("/reject-pending-job/:database/:collection/:id/:employerId", h.RejectPendingJob)
}

func (h *JobHandler) PostJob(c *gin.Context) {
	if _, ok := h.CheckStoreParams(c); !ok {
		return
	}

	var req dto.PostJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.PostJob(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"newJob": job})
}

// ApprovePendingJob takes the full pending document in the body and answers
// with the id the promoted copy got in the published store.
func (h *JobHandler) ApprovePendingJob(c *gin.Context) {
	if _, ok := h.CheckStoreParams(c); !ok {
		return
	}

	var body models.Job
	if err := c.ShouldBindJSON(&body); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Request body must contain a document"))
		return
	}
	if body.ID == "" || body.EmployerID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Request body must contain a document"))
		return
	}

	insertedID, err := h.jobService.ApprovePendingJob(c.Request.Context(), &body)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Document inserted and removed from pending jobs successfully",
		"insertedId": insertedID,
	})
}

func (h *JobHandler) RejectPendingJob(c *gin.Context) {
	if _, ok := h.CheckStoreParams(c); !ok {
		return
	}
	jobID := c.Param("id")
	employerID := c.Param("employerId")

	if err := h.jobService.RejectPendingJob(c.Request.Context(), jobID, employerID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Document with ID " + jobID + " deleted successfully.",
	})
}
