package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/dto/request"
	response "github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/dto/response"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/middleware"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/validation"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/logger"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/pkg"
)

// AuthHandler issues and clears sessions.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
	auth    *middleware.Auth
}

func NewAuthHandler(uc usecase.IAuthUseCase, auth *middleware.Auth) *AuthHandler {
	return &AuthHandler{usecase: uc, auth: auth}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req request.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, validation.BindError(err))
		return
	}

	user, err := h.usecase.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	h.startSession(c, http.StatusCreated, user, entities.Permissions{}, false)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, validation.BindError(err))
		return
	}

	user, perms, err := h.usecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	h.startSession(c, http.StatusOK, user, perms, req.Remember)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.ClearSession(c)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized))
		return
	}
	c.JSON(http.StatusOK, response.MeResponse{User: response.FromUser(user), Permissions: middleware.CurrentPermissions(c)})
}

func (h *AuthHandler) startSession(c *gin.Context, status int, user entities.User, perms entities.Permissions, remember bool) {
	token, expires, err := h.auth.Tokens().Issue(user, perms, remember)
	if err != nil {
		logger.For("auth.handler").WithError(err).WithField("user_id", user.ID).Error("token issue failed")
		writeError(c, internalError(err))
		return
	}
	h.auth.SetSession(c, token, expires)
	c.JSON(status, response.SessionResponse{
		Token:       token,
		ExpiresAt:   expires,
		User:        response.FromUser(user),
		Permissions: perms,
	})
}
