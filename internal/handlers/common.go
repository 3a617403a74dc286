package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubstem/registration-service/internal/kvstore"
	"github.com/clubstem/registration-service/internal/services"
	"github.com/clubstem/registration-service/internal/utils"
)

type ErrorResponse struct {
	Message string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	args = append(args, "path", c.Request.URL.Path, "request_id", c.GetString("request_id"))
	h.logger.Info(msg, args...)
}

// handleServiceError maps the service error taxonomy onto HTTP statuses.
// Store failures surface as internal errors; the connection manager has
// already invalidated its handle by the time they arrive here.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: gin.H{
				"fields": validationErrors.Fields(),
				"errors": validationErrors,
			},
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrEmailRegistered):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Email address is already registered",
			Code:    "EMAIL_REGISTERED",
		})
	case errors.Is(err, services.ErrAlreadyVoted):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "This visitor has already voted",
			Code:    "ALREADY_VOTED",
		})
	case errors.Is(err, services.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Role is not one of the accepted values",
			Code:    "INVALID_ROLE",
		})
	case errors.Is(err, services.ErrMissingVoter):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "No voter identifier supplied",
			Code:    "NO_UID",
		})
	default:
		var storeErr *kvstore.StoreError
		if errors.As(err, &storeErr) {
			h.logger.Error("store failure", "op", storeErr.Op, "error", storeErr.Err)
		} else {
			h.logger.Error("unhandled service error", "error", err)
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
