package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/handlers"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/middleware"
)

const (
	PathRegistrations = "/registrations"
	PathMine          = "/me"
)

func addRegistrationRoutes(rg *gin.RouterGroup, auth *middleware.Auth, h *handlers.RegistrationHandler, cards *handlers.CardPaymentHandler) {
	registrations := rg.Group(PathRegistrations, auth.RequireAuth())
	{
		registrations.POST("", h.Create)
	}

	mine := registrations.Group(PathMine)
	{
		mine.GET("", h.GetMine)
		mine.GET("/payment", h.Payment)
		mine.GET("/payment/qrcode.png", h.QRCode)
		mine.POST("/proof", h.UploadProof)
		mine.POST("/card-payment", cards.Create)
		mine.GET("/card-payment", cards.GetLatest)
	}
}
