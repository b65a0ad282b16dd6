package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/praneeth8555/dairyadmin/internal/auth/domain"
)

func (s *Server) Login(c *gin.Context) {
	var req authdomain.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.authSvc.Login(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) Register(c *gin.Context) {
	var req authdomain.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.authSvc.Register(c.Request.Context(), req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}
