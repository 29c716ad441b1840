package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/handlers"
)

func addPublicRoutes(rg *gin.RouterGroup, eventHandler *handlers.EventHandler) {
	rg.GET("/ping", handlers.Ping)
	rg.GET("/event", eventHandler.Get)
	rg.POST("/pix/verify", handlers.VerifyPix)
}
