package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/dto/request"
	response "github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/dto/response"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/middleware"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/logger"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/pkg"
)

// CardPaymentHandler charges the signed-in registrant's credit card registration.
type CardPaymentHandler struct {
	usecase       usecase.ICardPaymentUseCase
	registrations usecase.IRegistrationUseCase
	mockMode      bool
}

func NewCardPaymentHandler(uc usecase.ICardPaymentUseCase, registrations usecase.IRegistrationUseCase, mockMode bool) *CardPaymentHandler {
	return &CardPaymentHandler{usecase: uc, registrations: registrations, mockMode: mockMode}
}

// Create accepts the Mercado Pago card form output, raw or wrapped in {"mp_payload": ...}.
func (h *CardPaymentHandler) Create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	log := logger.For("payment.handler").WithField("user_id", userID)

	reg, err := h.registrations.GetMine(c.Request.Context(), userID)
	if err != nil {
		writeError(c, mapRegistrationError(err))
		return
	}
	log = log.WithField("registration_id", reg.ID)
	log.Debug("create start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.WithError(err).Warn("invalid payload")
			writeError(c, errInvalidRequest)
			return
		}
		log.WithError(err).Info("payload invalid in mock mode; fallback to empty payload")
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), reg.ID, mpPayload)
	if err != nil {
		log.WithError(err).Warn("create failed")
		writeError(c, mapCardPaymentError(err))
		return
	}
	log.WithField("payment_id", created.ID).WithField("status", created.Status).Info("create success")

	c.JSON(http.StatusOK, response.FromCardPayment(created))
}

// GetLatest returns the most recent card payment of the registrant.
func (h *CardPaymentHandler) GetLatest(c *gin.Context) {
	reg, err := h.registrations.GetMine(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		writeError(c, mapRegistrationError(err))
		return
	}

	payments, err := h.usecase.ListByRegistrationID(c.Request.Context(), reg.ID)
	if err != nil {
		writeError(c, mapCardPaymentError(err))
		return
	}
	if len(payments) == 0 {
		writeError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromCardPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.CardPaymentCreateRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.MPPayload != nil {
		wrapped := strings.TrimSpace(string(envelope.MPPayload))
		if wrapped == "" || wrapped == "null" {
			return nil, errors.New("mp_payload cannot be empty")
		}
		return envelope.MPPayload, nil
	}
	return json.RawMessage(raw), nil
}
