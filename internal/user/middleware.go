package user

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key the session is stored under.
const SessionKey = "session"

// RequireSession rejects requests without a valid bearer token and puts
// the parsed session into the gin context.
func RequireSession(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionFromRequest(c, svc)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "please sign in"})
			return
		}
		c.Set(SessionKey, session)
		c.Next()
	}
}

// LoadSession puts the session into the context when a valid token is
// present, but lets anonymous requests through.
func LoadSession(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session, ok := sessionFromRequest(c, svc); ok {
			c.Set(SessionKey, session)
		}
		c.Next()
	}
}

// CurrentSession fetches the session placed by the middleware; the
// second return is false for anonymous requests.
func CurrentSession(c *gin.Context) (*Session, bool) {
	value, exists := c.Get(SessionKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*Session)
	return session, ok
}

func sessionFromRequest(c *gin.Context, svc *Service) (*Session, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}
	session, err := svc.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil, false
	}
	return session, true
}
