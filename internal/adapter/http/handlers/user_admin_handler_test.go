package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/handlers/mocks"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase"
)

func newUserAdminRouter(t *testing.T) (*mocks.MockIUserAdminUseCase, string, *gin.Engine) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIUserAdminUseCase(ctrl)
	auth := newTestAuth()
	h := NewUserAdminHandler(uc)

	r := newTestRouter(auth)
	super := r.Group("/v1/admin", auth.RequireSuper())
	super.GET("/roles", h.ListRoles)
	super.POST("/roles", h.CreateRole)
	super.GET("/users", h.ListUsers)
	super.POST("/users/roles", h.GrantRole)
	super.DELETE("/users/roles", h.RevokeRole)
	super.PATCH("/users/active", h.SetActive)

	root := entities.User{ID: "root", Email: "root@example.com", IsActive: true}
	return uc, bearer(t, auth, root, entities.Permissions{IsSuper: true}), r
}

func TestUserAdminHandler_Roles(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		uc, token, r := newUserAdminRouter(t)
		uc.EXPECT().ListRoles(gomock.Any()).Return(entities.DefaultRoles(), nil)

		w := doRequest(r, http.MethodGet, "/v1/admin/roles", nil, token)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res struct {
			Items []entities.Role `json:"items"`
			Total int             `json:"total"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res.Total != 3 {
			t.Fatalf("expected 3 roles, got %+v", res)
		}
	})

	t.Run("create", func(t *testing.T) {
		uc, token, r := newUserAdminRouter(t)
		uc.EXPECT().CreateRole(gomock.Any(), "root", entities.Role{Name: "portaria", CanAccessAdmin: true}).
			Return(entities.Role{Name: "portaria", CanAccessAdmin: true}, nil)

		w := doRequest(r, http.MethodPost, "/v1/admin/roles", jsonBody(`{"name":"portaria","can_access_admin":true}`), token)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("create duplicate", func(t *testing.T) {
		uc, token, r := newUserAdminRouter(t)
		uc.EXPECT().CreateRole(gomock.Any(), "root", gomock.Any()).Return(entities.Role{}, usecase.ErrRoleAlreadyExists)

		w := doRequest(r, http.MethodPost, "/v1/admin/roles", jsonBody(`{"name":"admin"}`), token)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("create without name", func(t *testing.T) {
		_, token, r := newUserAdminRouter(t)

		w := doRequest(r, http.MethodPost, "/v1/admin/roles", jsonBody(`{}`), token)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if res := decodeError(t, w); len(res.Fields) != 1 || res.Fields[0].Field != "name" {
			t.Fatalf("expected name field error, got %+v", res)
		}
	})
}

func TestUserAdminHandler_Users(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		uc, token, r := newUserAdminRouter(t)
		uc.EXPECT().ListUsers(gomock.Any()).Return([]entities.User{{ID: "u-1", Email: "ana@example.com"}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/admin/users", nil, token)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "password") {
			t.Fatalf("password hash leaked: %s", w.Body.String())
		}
	})

	t.Run("grant unknown role", func(t *testing.T) {
		uc, token, r := newUserAdminRouter(t)
		uc.EXPECT().GrantRole(gomock.Any(), "root", "ana@example.com", "nope").Return(entities.User{}, usecase.ErrRoleNotFound)

		w := doRequest(r, http.MethodPost, "/v1/admin/users/roles", jsonBody(`{"email":"ana@example.com","role":"nope"}`), token)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("grant invalid email", func(t *testing.T) {
		_, token, r := newUserAdminRouter(t)

		w := doRequest(r, http.MethodPost, "/v1/admin/users/roles", jsonBody(`{"email":"ana","role":"admin"}`), token)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("revoke own super", func(t *testing.T) {
		uc, token, r := newUserAdminRouter(t)
		uc.EXPECT().RevokeRole(gomock.Any(), "root", "root@example.com", "super").Return(entities.User{}, usecase.ErrSelfLockout)

		w := doRequest(r, http.MethodDelete, "/v1/admin/users/roles", jsonBody(`{"email":"root@example.com","role":"super"}`), token)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("deactivate", func(t *testing.T) {
		uc, token, r := newUserAdminRouter(t)
		uc.EXPECT().SetActive(gomock.Any(), "root", "ana@example.com", false).Return(entities.User{ID: "u-1", Email: "ana@example.com"}, nil)

		w := doRequest(r, http.MethodPatch, "/v1/admin/users/active", jsonBody(`{"email":"ana@example.com","active":false}`), token)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("active missing", func(t *testing.T) {
		_, token, r := newUserAdminRouter(t)

		w := doRequest(r, http.MethodPatch, "/v1/admin/users/active", jsonBody(`{"email":"ana@example.com"}`), token)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
