package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/amanmaurya001/backend-test/internal/security"
	"github.com/gin-gonic/gin"
)

// ClientIDKey is where Require stores the verified client id in gin.Context.
const ClientIDKey = "clientID"

type Authz struct {
	tokens *security.TokenService
}

func NewAuthz(tokens *security.TokenService) *Authz {
	return &Authz{tokens: tokens}
}

// Require validates the bearer token and exposes the embedded client id to
// downstream handlers. Missing or malformed credentials get 401; a bad
// signature or an expired token gets 403.
func (a *Authz) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			unauth(c, "invalid_request", "missing bearer token")
			return
		}

		cid, err := a.tokens.Verify(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			if errors.Is(err, security.ErrForbidden) {
				forbidden(c, "invalid_token", "invalid or expired token")
				return
			}
			unauth(c, "invalid_token", "unparseable token")
			return
		}

		c.Set(ClientIDKey, cid)
		c.Next()
	}
}

func unauth(c *gin.Context, code, desc string) {
	c.Header("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": code, "error_description": desc})
}

func forbidden(c *gin.Context, code, desc string) {
	c.Header("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": code, "error_description": desc})
}
