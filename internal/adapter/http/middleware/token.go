package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
)

const tokenIssuer = "iap-convencao-amazonica"

var (
	ErrInvalidToken       = errors.New("invalid session token")
	errTokenSigningFailed = errors.New("failed to sign token")
)

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.RegisteredClaims
	Email             string `json:"email"`
	IsSuper           bool   `json:"is_super,omitempty"`
	CanAccessAdmin    bool   `json:"can_access_admin,omitempty"`
	CanReviewPayments bool   `json:"can_review_payments,omitempty"`
}

func (c Claims) Permissions() entities.Permissions {
	return entities.Permissions{
		IsSuper:           c.IsSuper,
		CanAccessAdmin:    c.CanAccessAdmin,
		CanReviewPayments: c.CanReviewPayments,
	}
}

// TokenManager signs and verifies HS256 session tokens.
type TokenManager struct {
	secret      []byte
	ttl         time.Duration
	rememberTTL time.Duration
	now         func() time.Time
}

func NewTokenManager(secret string, ttl, rememberTTL time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, rememberTTL: rememberTTL, now: time.Now}
}

// Issue returns a signed token for the user and its expiry. remember selects the long TTL.
func (m *TokenManager) Issue(u entities.User, perms entities.Permissions, remember bool) (string, time.Time, error) {
	now := m.now()
	ttl := m.ttl
	if remember {
		ttl = m.rememberTTL
	}
	exp := now.Add(ttl)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Email:             u.Email,
		IsSuper:           perms.IsSuper,
		CanAccessAdmin:    perms.CanAccessAdmin,
		CanReviewPayments: perms.CanReviewPayments,
	}
	ss, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, errTokenSigningFailed
	}
	return ss, exp, nil
}

// Parse validates signature, algorithm, issuer and expiry.
func (m *TokenManager) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
