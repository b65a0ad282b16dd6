package server

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates the bearer token on every admin API request.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		username, err := s.authSvc.VerifyToken(strings.TrimSpace(parts[1]))
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set("admin_username", username)
		c.Next()
	}
}
