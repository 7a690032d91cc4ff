package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"shopadmin/internal/domain"
	"github.com/gin-gonic/gin"
)

const sessionEmailKey = "sessionEmail"

// sessionMiddleware authenticates the request with a bearer session token
// issued by the external identity provider and written to the session store.
func sessionMiddleware(sessions sessionStore, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated", "message": "missing bearer token"})
			return
		}

		sess, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated", "message": "invalid session"})
				return
			}
			logger.Printf("session lookup error: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "storage_error", "message": "session lookup failed"})
			return
		}
		if time.Now().After(sess.ExpiresAt) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated", "message": "session expired"})
			return
		}

		c.Set(sessionEmailKey, sess.Email)
		c.Next()
	}
}

// adminOnly grants mutating access to allow-listed emails only. The list
// comes from configuration, not code.
func adminOnly(adminEmails []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		allowed[strings.ToLower(email)] = struct{}{}
	}
	return func(c *gin.Context) {
		email := strings.ToLower(c.GetString(sessionEmailKey))
		if _, ok := allowed[email]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden", "message": "admin access required"})
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
