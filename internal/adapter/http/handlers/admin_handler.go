package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	request "github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/dto/request"
	response "github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/dto/response"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/middleware"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/validation"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/export"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/logger"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase"
)

// AdminHandler serves the back-office registration and audit routes.
type AdminHandler struct {
	registrations usecase.IRegistrationUseCase
	audit         usecase.IAuditUseCase
	loc           *time.Location
}

func NewAdminHandler(registrations usecase.IRegistrationUseCase, audit usecase.IAuditUseCase, loc *time.Location) *AdminHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AdminHandler{registrations: registrations, audit: audit, loc: loc}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	out, err := h.registrations.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, mapRegistrationError(err))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) ListRegistrations(c *gin.Context) {
	filter, ok := h.filter(c)
	if !ok {
		return
	}
	page, err := h.registrations.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapRegistrationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRegistrationPage(page, h.registrations.ProofURL))
}

func (h *AdminHandler) GetRegistration(c *gin.Context) {
	reg, err := h.registrations.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapRegistrationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRegistration(reg, h.registrations.ProofURL))
}

// Export downloads the filtered listing as a spreadsheet.
func (h *AdminHandler) Export(c *gin.Context) {
	filter, ok := h.filter(c)
	if !ok {
		return
	}
	data, err := h.registrations.Export(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapRegistrationError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	c.Data(http.StatusOK, export.ContentType, data)
}

func (h *AdminHandler) Approve(c *gin.Context) {
	h.review(c, h.registrations.Approve)
}

func (h *AdminHandler) Reject(c *gin.Context) {
	h.review(c, h.registrations.Reject)
}

// review takes an optional {"note": "..."} body.
func (h *AdminHandler) review(c *gin.Context, apply func(ctx context.Context, reviewerID, id, note string) (entities.Registration, error)) {
	var req request.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, validation.BindError(err))
		return
	}

	reviewerID := middleware.CurrentUserID(c)
	id := c.Param("id")
	reg, err := apply(c.Request.Context(), reviewerID, id, strings.TrimSpace(req.Note))
	if err != nil {
		logger.For("admin.handler").WithError(err).WithField("registration_id", id).WithField("reviewer_id", reviewerID).Warn("review failed")
		writeError(c, mapRegistrationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRegistration(reg, h.registrations.ProofURL))
}

func (h *AdminHandler) AuditLogs(c *gin.Context) {
	var q request.AuditLogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, validation.BindError(err))
		return
	}
	logs, err := h.audit.List(c.Request.Context(), q.Limit)
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuditLogs(logs))
}

func (h *AdminHandler) filter(c *gin.Context) (entities.RegistrationFilter, bool) {
	var q request.RegistrationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, validation.BindError(err))
		return entities.RegistrationFilter{}, false
	}
	return q.ToFilter(h.loc), true
}
