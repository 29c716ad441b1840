package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/dto/response"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/config"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase"
)

// EventHandler serves the public landing information.
type EventHandler struct {
	registrations   usecase.IRegistrationUseCase
	event           config.EventConfig
	maxInstallments int
}

func NewEventHandler(registrations usecase.IRegistrationUseCase, event config.EventConfig, maxInstallments int) *EventHandler {
	return &EventHandler{registrations: registrations, event: event, maxInstallments: maxInstallments}
}

func (h *EventHandler) Get(c *gin.Context) {
	lot, err := h.registrations.CurrentLot(c.Request.Context())
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEvent(lot, h.event, h.maxInstallments))
}
