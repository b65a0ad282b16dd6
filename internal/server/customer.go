package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/praneeth8555/dairyadmin/internal/customer/domain"
)

func (s *Server) ListCustomers(c *gin.Context) {
	resp, err := s.customerSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListApartmentCustomers(c *gin.Context) {
	apartmentID := strings.TrimSpace(c.Query("apartment_id"))
	if apartmentID == "" {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.ListByApartment(c.Request.Context(), apartmentID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateCustomer(c *gin.Context) {
	var req customerdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) BulkCreateCustomers(c *gin.Context) {
	var req struct {
		Customers []customerdomain.CreateRequest `json:"customers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Customers) == 0 {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.BulkCreate(c.Request.Context(), req.Customers)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) UpdateCustomer(c *gin.Context) {
	var req customerdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = c.Param("id")

	resp, err := s.customerSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteCustomer(c *gin.Context) {
	if err := s.customerSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) UpdatePriorities(c *gin.Context) {
	var req customerdomain.UpdatePrioritiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.customerSvc.UpdatePriorities(c.Request.Context(), req); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
