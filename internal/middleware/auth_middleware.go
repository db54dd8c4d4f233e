package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/changil/changilweb-server/internal/services"
	"github.com/changil/changilweb-server/internal/session"
	"github.com/changil/changilweb-server/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/topi314/tint"
)

const (
	msgLoginRequired  = "로그인이 필요합니다."
	msgSessionExpired = "세션이 만료되었습니다. 다시 로그인해주세요."
	msgInvalidToken   = "유효하지 않은 인증 정보입니다."
)

// AdminAuthMiddleware admits a request carrying a valid bearer token, or
// failing that a cookie session the guard accepts. A stale cookie session
// is cleared on the way out.
func AdminAuthMiddleware(auth services.AuthService, cookies *session.CookieStore, guard *session.Guard, logger *slog.Logger) gin.HandlerFunc {
	const bearerSchema = "Bearer "

	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			if !strings.HasPrefix(header, bearerSchema) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgInvalidToken})
				return
			}
			_, err := auth.Verify(strings.TrimSpace(header[len(bearerSchema):]))
			if err != nil {
				logger.DebugContext(c.Request.Context(), "admin token rejected", tint.Err(err))
				if errors.Is(err, jwt.ErrTokenExpired) {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgSessionExpired})
				} else {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgInvalidToken})
				}
				return
			}
			c.Next()
			return
		}

		store, err := cookies.Open(c.Request)
		if err != nil {
			logger.WarnContext(c.Request.Context(), "failed to open session", tint.Err(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgLoginRequired})
			return
		}

		_, hadLogin := store.Get(session.KeyAdminLoggedIn)
		decision := guard.Check(store, time.Now())
		if !decision.Allowed {
			msg := msgLoginRequired
			if hadLogin {
				msg = msgSessionExpired
				if err := store.Save(c.Request, c.Writer); err != nil {
					logger.WarnContext(c.Request.Context(), "failed to clear session", tint.Err(err))
				}
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
			return
		}

		c.Next()
	}
}
