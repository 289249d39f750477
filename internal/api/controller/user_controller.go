package controller

import (
	"ctchen222/user-auth/internal/api/models"
	"ctchen222/user-auth/internal/api/response"
	"ctchen222/user-auth/internal/api/service"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	msgLoginNotFound  = "User not found or invalid credentials"
	msgLoginTechnical = "An error occurred during the login process"
)

// UserController handles user-related HTTP requests.
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Register handles the user registration endpoint. Fields are bound from the
// query string, a form body or a JSON body.
func (uc *UserController) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.DebugContext(ctx, "failed to bind register request", "error", err)
		response.EnvelopeResponse(c, http.StatusBadRequest, []string{response.MsgInvalidPayload}, response.StatusUserNotCreated)
		return
	}

	err := uc.userService.Register(ctx, &req)
	if err == nil {
		response.EnvelopeResponse(c, http.StatusCreated, nil, response.StatusUserCreated)
		return
	}

	if service.KindOf(err) == service.KindValidation {
		response.EnvelopeResponse(c, http.StatusBadRequest, service.MessagesOf(err), response.StatusUserNotCreated)
		return
	}

	slog.ErrorContext(ctx, "registration failed", "error", err)
	response.TechnicalErrorResponse(c, http.StatusInternalServerError, response.StatusUserNotCreated)
}

// Login handles the user login endpoint.
func (uc *UserController) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.DebugContext(ctx, "failed to bind login request", "error", err)
		response.MessageResponse(c, http.StatusBadRequest, response.MsgInvalidPayload)
		return
	}

	token, err := uc.userService.Login(ctx, &req, c.GetHeader("Authorization"))
	if err != nil {
		if service.KindOf(err) == service.KindNotFound {
			response.MessageResponse(c, http.StatusNotFound, msgLoginNotFound)
			return
		}
		slog.ErrorContext(ctx, "login failed", "error", err)
		response.MessageResponse(c, http.StatusInternalServerError, msgLoginTechnical)
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token})
}

// Details handles the profile endpoint.
func (uc *UserController) Details(c *gin.Context) {
	ctx := c.Request.Context()

	details, err := uc.userService.Details(ctx, c.GetHeader("Authorization"))
	if err != nil {
		slog.ErrorContext(ctx, "details failed", "error", err)
		response.TechnicalErrorResponse(c, http.StatusInternalServerError, response.StatusTokenUnverified)
		return
	}

	c.JSON(http.StatusOK, details)
}
