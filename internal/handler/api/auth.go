package api

import (
	"context"
	"net/http"
	"time"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionOpener interface {
	Open() *usecase.Session
	Close(id uuid.UUID)
}

type TokenIssuer interface {
	GenerateToken(sessionID, userID uuid.UUID) (string, error)
	TokenDuration() time.Duration
}

type AuthHandler struct {
	sessions SessionOpener
	tokens   TokenIssuer
	cfg      config.Config
}

func NewAuthHandler(sessions SessionOpener, tokens TokenIssuer, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		tokens:   tokens,
		cfg:      cfg,
	}
}

// @Summary Sign in
// @Description Opens a session, or reuses the caller's, and signs the user in. Credentials are not checked.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	h.signIn(c, http.StatusOK, "Login failed", func(ctx context.Context, s *usecase.Session) (*queries.UserView, error) {
		return s.Auth.Login(ctx, req.ToInput())
	})
}

// @Summary Register
// @Description Opens a session, or reuses the caller's, with a newly registered user.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	h.signIn(c, http.StatusCreated, "Registration failed", func(ctx context.Context, s *usecase.Session) (*queries.UserView, error) {
		return s.Auth.Register(ctx, req.ToInput())
	})
}

// @Summary Sign out
// @Description Signs the user out and closes the session with its bookings.
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	if err := s.Auth.Logout(c.Request.Context()); err != nil {
		abortWithDomainError(c, err, "Logout failed")
		return
	}
	h.sessions.Close(s.ID)
	cookie.ClearSessionCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	u, err := s.Account.CurrentUser(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(u))
}

type signInFunc func(ctx context.Context, s *usecase.Session) (*queries.UserView, error)

func (h *AuthHandler) signIn(c *gin.Context, status int, fallback string, fn signInFunc) {
	s, reused := middleware.GetSession(c)
	if !reused {
		s = h.sessions.Open()
	}

	u, err := fn(c.Request.Context(), s)
	if err != nil {
		if !reused {
			h.sessions.Close(s.ID)
		}
		abortWithDomainError(c, err, fallback)
		return
	}

	token, err := h.tokens.GenerateToken(s.ID, u.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to issue session token", nil)
		return
	}
	cookie.SetSessionCookie(c, h.cfg.Cookie, token, h.tokens.TokenDuration())

	c.JSON(status, resdto.LoginResponse{
		AccessToken: token,
		User:        resdto.FromUserView(u),
	})
}
