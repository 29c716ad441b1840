// Package middleware authenticates requests from the session cookie or an
// Authorization bearer token and enforces role permissions.
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/logger"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/pkg"
)

const (
	SessionCookie = "session"

	contextUserKey  = "auth.user"
	contextPermsKey = "auth.permissions"
)

// UserLoader reloads the account behind a token so revoked roles and
// deactivated users take effect immediately.
type UserLoader interface {
	GetUser(ctx context.Context, id string) (entities.User, entities.Permissions, error)
}

type Auth struct {
	tokens *TokenManager
	users  UserLoader
	secure bool
}

// NewAuth builds the middleware set. users may be nil, in which case the token claims are trusted.
func NewAuth(tokens *TokenManager, users UserLoader, secureCookie bool) *Auth {
	return &Auth{tokens: tokens, users: users, secure: secureCookie}
}

// Authenticate resolves the current user when a valid token is present. It never aborts.
func (a *Auth) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c)
		if raw == "" {
			c.Next()
			return
		}
		claims, err := a.tokens.Parse(raw)
		if err != nil {
			c.Next()
			return
		}

		user := entities.User{ID: claims.Subject, Email: claims.Email, IsActive: true}
		perms := claims.Permissions()
		if a.users != nil {
			user, perms, err = a.users.GetUser(c.Request.Context(), claims.Subject)
			if err != nil {
				logger.For("auth.middleware").WithError(err).WithField("user_id", claims.Subject).Debug("session user not loaded")
				c.Next()
				return
			}
		}
		if !user.IsActive {
			c.Next()
			return
		}
		c.Set(contextUserKey, user)
		c.Set(contextPermsKey, perms)
		c.Next()
	}
}

func (a *Auth) RequireAuth() gin.HandlerFunc {
	return a.require(func(entities.Permissions) bool { return true })
}

func (a *Auth) RequireAdmin() gin.HandlerFunc {
	return a.require(func(p entities.Permissions) bool { return p.IsSuper || p.CanAccessAdmin })
}

func (a *Auth) RequireReviewer() gin.HandlerFunc {
	return a.require(func(p entities.Permissions) bool { return p.IsSuper || p.CanReviewPayments })
}

func (a *Auth) RequireSuper() gin.HandlerFunc {
	return a.require(func(p entities.Permissions) bool { return p.IsSuper })
}

func (a *Auth) require(allowed func(entities.Permissions) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if !allowed(CurrentPermissions(c)) {
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Permission denied", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

// SetSession writes the HttpOnly session cookie.
func (a *Auth) SetSession(c *gin.Context, token string, expires time.Time) {
	maxAge := int(time.Until(expires).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", a.secure, true)
}

func (a *Auth) ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", a.secure, true)
}

func (a *Auth) Tokens() *TokenManager {
	return a.tokens
}

func CurrentUser(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return entities.User{}, false
	}
	u, ok := v.(entities.User)
	return u, ok
}

func CurrentUserID(c *gin.Context) string {
	u, _ := CurrentUser(c)
	return u.ID
}

func CurrentPermissions(c *gin.Context) entities.Permissions {
	v, ok := c.Get(contextPermsKey)
	if !ok {
		return entities.Permissions{}
	}
	p, _ := v.(entities.Permissions)
	return p
}

func tokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
			return strings.TrimSpace(h[7:])
		}
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}
