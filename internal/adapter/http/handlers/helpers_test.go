package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/middleware"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/validation"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
)

var testUser = entities.User{ID: "u-1", Email: "ana@example.com", IsActive: true}

func newTestAuth() *middleware.Auth {
	return middleware.NewAuth(middleware.NewTokenManager("test-secret", time.Hour, 24*time.Hour), nil, false)
}

func newTestRouter(auth *middleware.Auth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Setup()
	r := gin.New()
	r.Use(auth.Authenticate())
	return r
}

func bearer(t *testing.T, auth *middleware.Auth, u entities.User, perms entities.Permissions) string {
	t.Helper()
	token, _, err := auth.Tokens().Issue(u, perms, false)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

func doRequest(r http.Handler, method, path string, body io.Reader, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonBody(s string) io.Reader {
	return bytes.NewBufferString(s)
}

type errorBody struct {
	Code   string `json:"code"`
	Fields []struct {
		Field string `json:"field"`
		Error string `json:"error"`
	} `json:"fields"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return body
}
