package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/handlers/mocks"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/middleware"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase"
)

func newAuthRouter(t *testing.T) (*mocks.MockIAuthUseCase, *middleware.Auth, http.Handler) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAuthUseCase(ctrl)
	auth := newTestAuth()
	h := NewAuthHandler(uc, auth)

	r := newTestRouter(auth)
	r.POST("/v1/auth/signup", h.SignUp)
	r.POST("/v1/auth/login", h.Login)
	r.POST("/v1/auth/logout", h.Logout)
	r.GET("/v1/auth/me", h.Me)
	return uc, auth, r
}

func TestAuthHandler_SignUp(t *testing.T) {
	t.Run("invalid body", func(t *testing.T) {
		_, _, r := newAuthRouter(t)

		w := doRequest(r, http.MethodPost, "/v1/auth/signup", jsonBody(`{"email":"nope","password":"123"}`), "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "INVALID_REQUEST" || len(body.Fields) != 2 {
			t.Fatalf("expected two field errors, got %+v", body)
		}
	})

	t.Run("email taken", func(t *testing.T) {
		uc, _, r := newAuthRouter(t)
		uc.EXPECT().SignUp(gomock.Any(), "ana@example.com", "secret1").Return(entities.User{}, usecase.ErrEmailAlreadyExists)

		w := doRequest(r, http.MethodPost, "/v1/auth/signup", jsonBody(`{"email":"ana@example.com","password":"secret1"}`), "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success sets session", func(t *testing.T) {
		uc, auth, r := newAuthRouter(t)
		uc.EXPECT().SignUp(gomock.Any(), "ana@example.com", "secret1").Return(testUser, nil)

		w := doRequest(r, http.MethodPost, "/v1/auth/signup", jsonBody(`{"email":"ana@example.com","password":"secret1"}`), "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res struct {
			Token string `json:"token"`
			User  struct {
				ID string `json:"id"`
			} `json:"user"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if res.User.ID != "u-1" {
			t.Fatalf("expected user u-1, got %+v", res.User)
		}
		claims, err := auth.Tokens().Parse(res.Token)
		if err != nil || claims.Subject != "u-1" {
			t.Fatalf("expected valid token for u-1, got %v %v", claims, err)
		}
		cookies := w.Result().Cookies()
		if len(cookies) != 1 || cookies[0].Name != middleware.SessionCookie || !cookies[0].HttpOnly {
			t.Fatalf("expected http-only session cookie, got %+v", cookies)
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("invalid credentials", func(t *testing.T) {
		uc, _, r := newAuthRouter(t)
		uc.EXPECT().Login(gomock.Any(), "ana@example.com", "wrong").Return(entities.User{}, entities.Permissions{}, usecase.ErrInvalidCredentials)

		w := doRequest(r, http.MethodPost, "/v1/auth/login", jsonBody(`{"email":"ana@example.com","password":"wrong"}`), "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("inactive account", func(t *testing.T) {
		uc, _, r := newAuthRouter(t)
		uc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.User{}, entities.Permissions{}, usecase.ErrAccountInactive)

		w := doRequest(r, http.MethodPost, "/v1/auth/login", jsonBody(`{"email":"ana@example.com","password":"secret1"}`), "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success carries permissions", func(t *testing.T) {
		uc, auth, r := newAuthRouter(t)
		perms := entities.Permissions{CanAccessAdmin: true}
		uc.EXPECT().Login(gomock.Any(), "ana@example.com", "secret1").Return(testUser, perms, nil)

		w := doRequest(r, http.MethodPost, "/v1/auth/login", jsonBody(`{"email":"ana@example.com","password":"secret1","remember":true}`), "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res struct {
			Token       string               `json:"token"`
			Permissions entities.Permissions `json:"permissions"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !res.Permissions.CanAccessAdmin {
			t.Fatalf("expected admin permission, got %+v", res.Permissions)
		}
		claims, err := auth.Tokens().Parse(res.Token)
		if err != nil || !claims.CanAccessAdmin {
			t.Fatalf("expected admin claim, got %v %v", claims, err)
		}
	})
}

func TestAuthHandler_LogoutAndMe(t *testing.T) {
	t.Run("logout clears cookie", func(t *testing.T) {
		_, _, r := newAuthRouter(t)

		w := doRequest(r, http.MethodPost, "/v1/auth/logout", nil, "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		cookies := w.Result().Cookies()
		if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
			t.Fatalf("expected expired cookie, got %+v", cookies)
		}
	})

	t.Run("me without session", func(t *testing.T) {
		_, _, r := newAuthRouter(t)

		w := doRequest(r, http.MethodGet, "/v1/auth/me", nil, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("me with token", func(t *testing.T) {
		_, auth, r := newAuthRouter(t)

		w := doRequest(r, http.MethodGet, "/v1/auth/me", nil, bearer(t, auth, testUser, entities.Permissions{IsSuper: true}))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res struct {
			User struct {
				Email string `json:"email"`
			} `json:"user"`
			Permissions entities.Permissions `json:"permissions"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if res.User.Email != "ana@example.com" || !res.Permissions.IsSuper {
			t.Fatalf("unexpected me response: %+v", res)
		}
	})
}
