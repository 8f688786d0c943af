package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/services"
)

const principalContextKey = "principal"

// accessClaims is the JWT payload for an authenticated session. Subject
// carries the account identifier.
type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies the bearer tokens handed out at login.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer with the given HMAC secret and
// token lifetime.
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue creates a signed token for the principal.
func (t *TokenIssuer) Issue(principal *services.Principal) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Role: principal.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.AccountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses a signed token back into a principal.
func (t *TokenIssuer) Verify(tokenString string) (*services.Principal, error) {
	var claims accessClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	accountID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(claims.Role)
	if err != nil {
		return nil, err
	}

	return &services.Principal{AccountID: accountID, Role: role}, nil
}

// AuthMiddleware resolves the Authorization header into a principal and
// stores it on the request context. Requests without a valid bearer token
// are rejected; role checks happen in the application layer.
func AuthMiddleware(tokens *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			principal, err := tokens.Verify(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid bearer token",
				})
			}

			c.Set(principalContextKey, principal)
			return next(c)
		}
	}
}

// principalFrom returns the authenticated principal stored by
// AuthMiddleware, or nil on unauthenticated routes.
func principalFrom(c echo.Context) *services.Principal {
	principal, _ := c.Get(principalContextKey).(*services.Principal)
	return principal
}
