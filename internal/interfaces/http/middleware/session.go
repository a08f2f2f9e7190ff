package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/p2p/backend/internal/infrastructure/auth"
)

// StaffCodeKey is the gin context key for the authenticated staff code.
const StaffCodeKey = "staff_code"

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "p2p_session"

// Session parses the session token from the Authorization header or the
// session cookie and sets the staff code into the gin context. It does not
// reject requests itself; handlers fail fast with the session-expired
// response when no staff code is present, matching the feed's own guard.
func Session(sessions *auth.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				token = cookie
			}
		}

		if token != "" {
			if claims, err := sessions.Parse(token); err == nil {
				c.Set(StaffCodeKey, claims.StaffCode)
			}
		}
		c.Next()
	}
}

// StaffCode returns the authenticated staff code, empty when the session is
// missing or invalid.
func StaffCode(c *gin.Context) string {
	if v, ok := c.Get(StaffCodeKey); ok {
		if code, ok := v.(string); ok {
			return code
		}
	}
	return ""
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
