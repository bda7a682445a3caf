package handlers

import (
	"net/http"

	"github.com/LJMarquez/talentlink-backend/internal/services"
	"github.com/LJMarquez/talentlink-backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	*BaseHandler
	accountService *services.AccountService
}

func NewAccountHandler(base *BaseHandler, accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{
		BaseHandler:    base,
		accountService: accountService,
	}
}

func (h *AccountHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/retrieve-user/:database/:collection/:userId", h.RetrieveUser)
	r.GET("/log-in/:database/:collection/:email/:password", h.LogIn)
	r.POST("/sign-up/:database/:collection", h.SignUp)
}

// RetrieveUser fetches an account by id. Older clients expect failures on
// this route as 500 with an error message, not 404.
func (h *AccountHandler) RetrieveUser(c *gin.Context) {
	if _, ok := h.CheckStoreParams(c); !ok {
		return
	}
	userID := c.Param("userId")

	user, err := h.accountService.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "User with ID " + userID + " not found",
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

// LogIn checks credentials passed as path segments and returns the account
// id alone. Like RetrieveUser, failures come back as 500 for older clients;
// the message never says whether the email or the password was wrong beyond
// what the original wording gave away.
func (h *AccountHandler) LogIn(c *gin.Context) {
	if _, ok := h.CheckStoreParams(c); !ok {
		return
	}
	email := c.Param("email")
	password := c.Param("password")

	id, err := h.accountService.LogIn(c.Request.Context(), email, password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "User with email " + email + " not found or password is incorrect",
		})
		return
	}

	c.JSON(http.StatusOK, id)
}

func (h *AccountHandler) SignUp(c *gin.Context) {
	if _, ok := h.CheckStoreParams(c); !ok {
		return
	}

	var req dto.SignUpRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.accountService.SignUp(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
