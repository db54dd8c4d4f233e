package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/services"
	"github.com/changil/changilweb-server/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/topi314/tint"
)

// AuthHandler handles admin login. A successful login returns a bearer
// token and also marks the cookie session, so either one admits the admin.
type AuthHandler struct {
	authService services.AuthService
	cookies     *session.CookieStore
	guard       *session.Guard
	logger      *slog.Logger
	now         func() time.Time
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthService, cookies *session.CookieStore, guard *session.Guard, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
		guard:       guard,
		logger:      logger,
		now:         time.Now,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.logger.InfoContext(c.Request.Context(), "admin login rejected", slog.String("username", req.Username))
		respondError(c, err)
		return
	}

	store, err := h.cookies.Open(c.Request)
	if err != nil {
		respondError(c, err)
		return
	}
	session.MarkLoggedIn(store, h.now())
	if err := store.Save(c.Request, c.Writer); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "failed to save admin session", tint.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgLoginFailed})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	store, err := h.cookies.Open(c.Request)
	if err != nil {
		respondError(c, err)
		return
	}
	session.Clear(store)
	if err := store.Save(c.Request, c.Writer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgLoggedOut})
}

// Session handles GET /auth/session
func (h *AuthHandler) Session(c *gin.Context) {
	now := h.now()

	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		loginTime, err := h.authService.Verify(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
		if err != nil {
			c.JSON(http.StatusOK, models.SessionStatus{})
			return
		}
		c.JSON(http.StatusOK, h.status(loginTime))
		return
	}

	store, err := h.cookies.Open(c.Request)
	if err != nil {
		c.JSON(http.StatusOK, models.SessionStatus{})
		return
	}
	_, hadLogin := store.Get(session.KeyAdminLoggedIn)
	decision := h.guard.Check(store, now)
	if !decision.Allowed {
		if hadLogin {
			_ = store.Save(c.Request, c.Writer)
		}
		c.JSON(http.StatusOK, models.SessionStatus{})
		return
	}
	c.JSON(http.StatusOK, h.status(decision.LoginTime))
}

func (h *AuthHandler) status(loginTime time.Time) models.SessionStatus {
	expiresAt := loginTime.Add(h.guard.MaxAge)
	return models.SessionStatus{LoggedIn: true, LoginTime: &loginTime, ExpiresAt: &expiresAt}
}
