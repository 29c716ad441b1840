package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/dto/request"
	response "github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/dto/response"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/validation"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/pkg/pix"
)

// VerifyPix checks the checksum of a pasted copy-and-paste payload. A bad
// payload is reported in the body, not as an HTTP error.
func VerifyPix(c *gin.Context) {
	var req request.PixVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, validation.BindError(err))
		return
	}
	details, err := pix.Inspect(strings.TrimSpace(req.Payload))
	c.JSON(http.StatusOK, response.FromPixInspect(details, err))
}
