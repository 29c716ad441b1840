package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/dto/request"
	response "github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/dto/response"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/middleware"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/validation"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase"
)

// UserAdminHandler is restricted to super users.
type UserAdminHandler struct {
	usecase usecase.IUserAdminUseCase
}

func NewUserAdminHandler(uc usecase.IUserAdminUseCase) *UserAdminHandler {
	return &UserAdminHandler{usecase: uc}
}

func (h *UserAdminHandler) ListRoles(c *gin.Context) {
	roles, err := h.usecase.ListRoles(c.Request.Context())
	if err != nil {
		writeError(c, mapUserAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRoles(roles))
}

func (h *UserAdminHandler) CreateRole(c *gin.Context) {
	var req request.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, validation.BindError(err))
		return
	}
	role, err := h.usecase.CreateRole(c.Request.Context(), middleware.CurrentUserID(c), req.ToRole())
	if err != nil {
		writeError(c, mapUserAdminError(err))
		return
	}
	c.JSON(http.StatusCreated, role)
}

func (h *UserAdminHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, mapUserAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(response.FromUsers(users)))
}

func (h *UserAdminHandler) GrantRole(c *gin.Context) {
	var req request.UserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, validation.BindError(err))
		return
	}
	user, err := h.usecase.GrantRole(c.Request.Context(), middleware.CurrentUserID(c), req.Email, req.Role)
	if err != nil {
		writeError(c, mapUserAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserAdminHandler) RevokeRole(c *gin.Context) {
	var req request.UserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, validation.BindError(err))
		return
	}
	user, err := h.usecase.RevokeRole(c.Request.Context(), middleware.CurrentUserID(c), req.Email, req.Role)
	if err != nil {
		writeError(c, mapUserAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserAdminHandler) SetActive(c *gin.Context) {
	var req request.UserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, validation.BindError(err))
		return
	}
	user, err := h.usecase.SetActive(c.Request.Context(), middleware.CurrentUserID(c), req.Email, *req.Active)
	if err != nil {
		writeError(c, mapUserAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}
