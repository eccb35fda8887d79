package middleware

import (
	"context"
	"net/http"

	"go-devconnector-backend/internal/delivery/http/response"
	"go-devconnector-backend/internal/domain"
	"go-devconnector-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// HeaderAuthToken is the out-of-band header carrying the signed token.
const HeaderAuthToken = "x-auth-token"

// AuthMiddleware is a pure gate: it verifies the token and attaches the
// resolved identity to the request context, or short-circuits with 401.
// It performs no database I/O.
func AuthMiddleware(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(HeaderAuthToken)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "No token, authorization denied.", nil)
			c.Abort()
			return
		}

		identity, err := tokens.Verify(tokenString)
		if err != nil {
			// Expired and malformed tokens are reported identically.
			response.Error(c, http.StatusUnauthorized, "Invalid token.", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), identity.UserID)
		// Usecases read the identity from the request context for ownership
		// checks, so it is attached there as well.
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, identity.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
