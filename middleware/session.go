package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookieName identifies the browser session that owns a submission.
const SessionCookieName = "planner_session"

// Session ensures every request carries a session id, issuing an HttpOnly
// cookie on first visit.
func Session(ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookieName)
		if err != nil || uuid.Validate(sid) != nil {
			sid = uuid.NewString()
		}
		// Refreshed on every request so active sessions do not expire mid-use.
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     SessionCookieName,
			Value:    sid,
			Path:     "/",
			MaxAge:   int(ttl / time.Second),
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})
		c.Set(ContextKeySessionID, sid)
		c.Next()
	}
}

// SessionIDFrom returns the id set by Session.
func SessionIDFrom(c *gin.Context) string {
	return c.GetString(ContextKeySessionID)
}
