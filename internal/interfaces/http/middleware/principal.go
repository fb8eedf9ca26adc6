package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volhub/backend/internal/domain/identity"
	"github.com/volhub/backend/internal/interfaces/http/dto"
)

// PrincipalKey is the context key for the authenticated principal
const PrincipalKey = "principal"

// ActorKindHeader carries the account type the caller authenticates as
const ActorKindHeader = "X-Actor-Kind"

// Authenticator verifies credentials and produces a principal
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string, kind identity.ActorKind) (*identity.Principal, error)
}

// RequireAuth authenticates the request with HTTP Basic credentials and the
// X-Actor-Kind header, then stores the principal in the gin context. There are
// no sessions; credentials are verified on every request. Missing or invalid
// credentials abort with 401.
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, ok := c.Request.BasicAuth()
		if !ok {
			abortUnauthorized(c)
			return
		}

		kind := identity.ActorKind(c.GetHeader(ActorKindHeader))
		principal, err := auth.Authenticate(c.Request.Context(), email, password, kind)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// GetPrincipal returns the authenticated principal, or nil when the request
// went through an unauthenticated route
func GetPrincipal(c *gin.Context) *identity.Principal {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return nil
	}
	principal, ok := value.(*identity.Principal)
	if !ok {
		return nil
	}
	return principal
}

func abortUnauthorized(c *gin.Context) {
	requestID := GetRequestID(c)
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, "Invalid credentials", requestID))
}
