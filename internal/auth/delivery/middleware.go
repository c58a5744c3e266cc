package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/apperror"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/token"
)

// tokenHeader is the metadata field carrying the bearer token.
const tokenHeader = "token"

// identityKey is the single request-context key the gate binds the verified
// user id under. Handlers read it once via CallerID and pass the id onward
// explicitly.
const identityKey = "userID"

// Gate returns the authorization middleware for one method. The policy is
// resolved when the route is wired, so an unlisted method panics at startup.
// The target handler is never entered on a rejection.
func Gate(codec *token.Codec, method string) gin.HandlerFunc {
	requiresAuth := RequiresAuth(method)
	return func(c *gin.Context) {
		if !requiresAuth {
			c.Next()
			return
		}

		raw := c.GetHeader(tokenHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperror.ErrTokenMissing.Error()})
			return
		}

		userID, err := codec.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(identityKey, userID)
		c.Next()
	}
}

// CallerID returns the verified user id bound by Gate. It is empty on
// routes whose policy does not require authentication.
func CallerID(c *gin.Context) string {
	return c.GetString(identityKey)
}
