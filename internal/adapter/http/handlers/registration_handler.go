package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/dto/request"
	response "github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/dto/response"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/middleware"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/validation"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/logger"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/pkg"
)

// RegistrationHandler serves the routes of the signed-in registrant.
type RegistrationHandler struct {
	usecase usecase.IRegistrationUseCase
}

func NewRegistrationHandler(uc usecase.IRegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{usecase: uc}
}

func (h *RegistrationHandler) Create(c *gin.Context) {
	var req request.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, validation.BindError(err))
		return
	}

	userID := middleware.CurrentUserID(c)
	reg, err := h.usecase.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		logger.For("registration.handler").WithError(err).WithField("user_id", userID).Warn("create failed")
		writeError(c, mapRegistrationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromRegistration(reg, h.usecase.ProofURL))
}

func (h *RegistrationHandler) GetMine(c *gin.Context) {
	reg, err := h.usecase.GetMine(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		writeError(c, mapRegistrationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRegistration(reg, h.usecase.ProofURL))
}

func (h *RegistrationHandler) Payment(c *gin.Context) {
	out, err := h.usecase.PaymentInstructions(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		writeError(c, mapRegistrationError(err))
		return
	}
	c.JSON(http.StatusOK, out)
}

// QRCode renders the PNG of ?installment=n, defaulting to the first one.
func (h *RegistrationHandler) QRCode(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("installment", "1"))
	if err != nil {
		writeError(c, mapRegistrationError(usecase.ErrInvalidInstallments))
		return
	}

	png, err := h.usecase.InstallmentQRCode(c.Request.Context(), middleware.CurrentUserID(c), n)
	if err != nil {
		writeError(c, mapRegistrationError(err))
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

// UploadProof accepts the multipart field "file".
func (h *RegistrationHandler) UploadProof(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, pkg.NewValidationError(pkg.FieldError{Field: "file", Error: "arquivo é obrigatório"}))
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	defer f.Close()

	userID := middleware.CurrentUserID(c)
	reg, err := h.usecase.UploadProof(c.Request.Context(), userID, usecase.ProofFile{
		Filename: fh.Filename,
		Size:     fh.Size,
		Body:     f,
	})
	if err != nil {
		logger.For("registration.handler").WithError(err).WithField("user_id", userID).Warn("proof upload failed")
		writeError(c, mapRegistrationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRegistration(reg, h.usecase.ProofURL))
}
