package middleware

import (
	"net/http"

	"lapak-be/internal/auth"
	"lapak-be/internal/logger"
	"lapak-be/internal/seller"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const currentSellerKey = "currentSeller"

// Auth verifies the bearer credential and resolves it to a seller record.
// Every failure mode (missing token, bad signature, expired token, subject
// that no longer exists) is the same 401; routes behind this middleware
// always have a principal.
func Auth(tokens *auth.TokenManager, sellers seller.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := auth.ExtractAccessToken(c.Request)
		if tokenStr == "" {
			abortUnauthorized(c)
			return
		}

		username, err := tokens.Verify(tokenStr)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		s, err := sellers.GetByUsername(c.Request.Context(), username)
		if err != nil {
			logger.FromCtx(c.Request.Context()).Warn("auth: token subject not resolvable",
				zap.String("username", username),
			)
			abortUnauthorized(c)
			return
		}

		c.Set(currentSellerKey, s)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "invalid authentication credentials",
	})
}

// CurrentSeller returns the seller resolved by Auth for this request.
func CurrentSeller(c *gin.Context) (*seller.Seller, bool) {
	v, ok := c.Get(currentSellerKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*seller.Seller)
	return s, ok
}
