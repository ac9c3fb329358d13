package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxSessionKey = "session"
	ctxClaimsKey  = "jwt_claims"
	tokenQueryKey = "token"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type SessionLookup interface {
	Get(id uuid.UUID) (*usecase.Session, error)
}

type SessionMiddleware struct {
	tokens   TokenValidator
	sessions SessionLookup
}

func NewSessionMiddleware(tokens TokenValidator, sessions SessionLookup) *SessionMiddleware {
	return &SessionMiddleware{
		tokens:   tokens,
		sessions: sessions,
	}
}

// RequireSession resolves the request token to a live session or aborts
// with 401.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, jwt.ErrInvalidToken, "Access token required", nil)
			return
		}

		s, claims, err := m.resolve(token)
		if err != nil {
			slog.Warn("session token rejected", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session", nil)
			return
		}

		SetSession(c, s)
		c.Set(ctxClaimsKey, claims)
		c.Next()
	}
}

// OptionalSession attaches a session when the token resolves to one and
// continues either way.
func (m *SessionMiddleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if s, claims, err := m.resolve(token); err == nil {
				SetSession(c, s)
				c.Set(ctxClaimsKey, claims)
			}
		}
		c.Next()
	}
}

func (m *SessionMiddleware) resolve(token string) (*usecase.Session, *jwt.Claims, error) {
	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		return nil, nil, err
	}
	s, err := m.sessions.Get(claims.SessionID)
	if err != nil {
		return nil, nil, err
	}
	return s, claims, nil
}

// cookie first, then the Authorization header, then ?token= for websocket
// clients that cannot set headers
func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(h[len("Bearer "):])
	}
	return strings.TrimSpace(c.Query(tokenQueryKey))
}

func SetSession(c *gin.Context, s *usecase.Session) {
	c.Set(ctxSessionKey, s)
}

func GetSession(c *gin.Context) (*usecase.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(*usecase.Session)
	return s, ok
}

func GetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(ctxClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}
