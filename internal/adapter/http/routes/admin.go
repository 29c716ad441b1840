package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/handlers"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/middleware"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, auth *middleware.Auth, h *handlers.AdminHandler, users *handlers.UserAdminHandler) {
	admin := rg.Group(PathAdmin, auth.RequireAdmin())
	{
		admin.GET("/dashboard", h.Dashboard)
		admin.GET("/registrations", h.ListRegistrations)
		admin.GET("/registrations/export.xlsx", h.Export)
		admin.GET("/registrations/:id", h.GetRegistration)
		admin.GET("/audit-logs", h.AuditLogs)
	}

	review := rg.Group(PathAdmin, auth.RequireReviewer())
	{
		review.PATCH("/registrations/:id/approve", h.Approve)
		review.PATCH("/registrations/:id/reject", h.Reject)
	}

	super := rg.Group(PathAdmin, auth.RequireSuper())
	{
		super.GET("/roles", users.ListRoles)
		super.POST("/roles", users.CreateRole)
		super.GET("/users", users.ListUsers)
		super.POST("/users/roles", users.GrantRole)
		super.DELETE("/users/roles", users.RevokeRole)
		super.PATCH("/users/active", users.SetActive)
	}
}
