package v1

import (
	"net/http"

	"go-devconnector-backend/internal/delivery/http/response"
	"go-devconnector-backend/internal/domain"
	"go-devconnector-backend/pkg/apperror"
	"go-devconnector-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	authUC domain.AuthUsecase
}

func NewUserHandler(public *gin.RouterGroup, authUC domain.AuthUsecase, limiter gin.HandlerFunc) {
	handler := &UserHandler{authUC: authUC}

	users := public.Group("/users")
	{
		users.POST("", limiter, handler.Register)
	}
}

// Register creates a user account and returns a signed token for it.
// POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var req domain.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	token, err := h.authUC.Register(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User created", gin.H{"token": token})
}

// respondValidationError sends field-level messages for binding failures and
// a plain 400 otherwise.
func respondValidationError(c *gin.Context, err error) {
	if _, ok := err.(validator.ValidationErrors); ok {
		response.Error(c, http.StatusBadRequest, "Validation failed", validation.FormatValidationErrors(err))
		return
	}
	c.Error(apperror.BadRequest(err.Error()))
}
