package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"unicode"

	"github.com/LJMarquez/talentlink-backend/internal/models"
	"github.com/LJMarquez/talentlink-backend/internal/services"
	"github.com/LJMarquez/talentlink-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// DebugHandler exposes raw document CRUD on the stores. These routes exist
// for manual poking and seeding, not for the application flows.
type DebugHandler struct {
	*BaseHandler
	accountService *services.AccountService
	jobService     *services.JobService
}

func NewDebugHandler(base *BaseHandler, accountService *services.AccountService, jobService *services.JobService) *DebugHandler {
	return &DebugHandler{
		BaseHandler:    base,
		accountService: accountService,
		jobService:     jobService,
	}
}

func (h *DebugHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/find/:database/:collection", h.Find)
	r.POST("/insert/:database/:collection", h.Insert)
	r.PUT("/update/:database/:collection/:id", h.Update)
	r.DELETE("/delete/:database/:collection/:id", h.Delete)
}

type insertRequest struct {
	Document  json.RawMessage   `json:"document"`
	Documents []json.RawMessage `json:"documents"`
}

func (h *DebugHandler) Find(c *gin.Context) {
	collection, ok := h.CheckStoreParams(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if collection == models.CollectionUsers {
		users, err := h.accountService.ListUsers(ctx)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
		return
	}

	jobs, err := h.jobService.ListJobs(ctx, collection)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *DebugHandler) Insert(c *gin.Context) {
	collection, ok := h.CheckStoreParams(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var req insertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	switch {
	case req.Document != nil:
		id, err := h.insertOne(ctx, collection, req.Document)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":    "Document inserted successfully",
			"insertedId": id,
		})

	case req.Documents != nil:
		ids := make([]string, 0, len(req.Documents))
		for _, raw := range req.Documents {
			id, err := h.insertOne(ctx, collection, raw)
			if err != nil {
				h.HandleServiceError(c, err)
				return
			}
			ids = append(ids, id)
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":     "Documents inserted successfully",
			"insertedIds": ids,
		})

	default:
		apperrors.HandleError(c, apperrors.NewBadRequestError(
			"Request body must contain either 'document' or 'documents' as array"))
	}
}

func (h *DebugHandler) insertOne(ctx context.Context, collection string, raw json.RawMessage) (string, error) {
	if collection == models.CollectionUsers {
		var user models.User
		if err := json.Unmarshal(raw, &user); err != nil {
			return "", apperrors.NewBadRequestError("Invalid document: " + err.Error())
		}
		if err := h.accountService.CreateUser(ctx, &user); err != nil {
			return "", err
		}
		return user.ID, nil
	}

	var job models.Job
	if err := json.Unmarshal(raw, &job); err != nil {
		return "", apperrors.NewBadRequestError("Invalid document: " + err.Error())
	}
	if err := h.jobService.CreateJob(ctx, collection, &job); err != nil {
		return "", err
	}
	return job.ID, nil
}

func (h *DebugHandler) Update(c *gin.Context) {
	collection, ok := h.CheckStoreParams(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")

	var body struct {
		Update map[string]interface{} `json:"update"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Update == nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Update data not provided"))
		return
	}

	fields := make(map[string]interface{}, len(body.Update))
	for key, value := range body.Update {
		fields[toColumnName(key)] = value
	}

	var modified interface{}
	var err error
	if collection == models.CollectionUsers {
		modified, err = h.accountService.UpdateUser(ctx, id, fields)
	} else {
		modified, err = h.jobService.UpdateJob(ctx, collection, id, fields)
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "Document updated successfully",
		"modifiedDocument": modified,
	})
}

func (h *DebugHandler) Delete(c *gin.Context) {
	collection, ok := h.CheckStoreParams(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")

	var err error
	if collection == models.CollectionUsers {
		err = h.accountService.DeleteUser(ctx, id)
	} else {
		err = h.jobService.DeleteJob(ctx, collection, id)
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Document with ID " + id + " deleted successfully.",
	})
}

// toColumnName maps the camelCase keys clients send to the snake_case
// column names the stores use.
func toColumnName(key string) string {
	var b strings.Builder
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
