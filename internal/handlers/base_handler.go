package handlers

import (
	"github.com/LJMarquez/talentlink-backend/internal/logger"
	"github.com/LJMarquez/talentlink-backend/internal/models"
	"github.com/LJMarquez/talentlink-backend/internal/validator"
	"github.com/LJMarquez/talentlink-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// CheckStoreParams validates the :database and :collection path segments
// against the known stores. Every data route carries them for compatibility
// with older clients, so the check lives here instead of in each handler.
func (h *BaseHandler) CheckStoreParams(c *gin.Context) (string, bool) {
	database := c.Param("database")
	collection := c.Param("collection")

	if database != models.DatabaseName {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Unknown database: "+database))
		return "", false
	}
	if !models.KnownCollection(collection) {
		apperrors.HandleError(c, apperrors.NewBadRequestError("No schema defined for collection: "+collection))
		return "", false
	}
	return collection, true
}
