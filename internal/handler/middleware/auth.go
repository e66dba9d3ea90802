package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	jwtpkg "clubnavi/portal/pkg/jwt"
	"clubnavi/portal/pkg/response"
)

const ContextKeyEditorClaims = "editor_claims"

// SessionCookieName carries the editor session for browser-originated
// requests (the admin UI posts previews with credentials, not a header).
const SessionCookieName = "editor_session"

// EditorAuth answers the one question the preview layer needs: is there a
// current editor? It accepts a Bearer token or the session cookie.
func EditorAuth(jwtManager *jwtpkg.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token, _ = c.Cookie(SessionCookieName)
		}
		if token == "" {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		claims, err := jwtManager.Validate(token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired session")
			c.Abort()
			return
		}

		c.Set(ContextKeyEditorClaims, claims)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
