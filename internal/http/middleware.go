package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fittrack/internal/auth"
)

const userIDKey = "userID"

// RequireAuth resolves the session cookie to a user id and aborts to the
// login page when the request is anonymous. Protected handlers only ever read
// the identity this middleware stored, so a forged owner id in a form body is
// ignored.
func RequireAuth(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		userID, err := sessions.Verify(token)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) int64 {
	id, _ := c.Get(userIDKey)
	userID, _ := id.(int64)
	return userID
}

const flashCookie = "fittrack_flash"

// Flash is a one-shot message surfaced on the next rendered page.
// Category matches the bootstrap alert classes the templates use.
type Flash struct {
	Category string
	Message  string
}

func setFlash(c *gin.Context, category, message string) {
	c.SetCookie(flashCookie, category+"|"+message, 300, "/", "", false, true)
}

// takeFlash pops the pending flash, clearing its cookie.
func takeFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	category, message, ok := strings.Cut(raw, "|")
	if !ok {
		return nil
	}
	return &Flash{Category: category, Message: message}
}
