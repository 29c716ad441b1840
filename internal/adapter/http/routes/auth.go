package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/handlers"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/middleware"
)

const PathAuth = "/auth"

func addAuthRoutes(rg *gin.RouterGroup, auth *middleware.Auth, h *handlers.AuthHandler) {
	group := rg.Group(PathAuth)
	{
		group.POST("/signup", h.SignUp)
		group.POST("/login", h.Login)
		group.POST("/logout", h.Logout)
		group.GET("/me", auth.RequireAuth(), h.Me)
	}
}
