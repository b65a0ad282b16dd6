package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	orderdomain "github.com/praneeth8555/dairyadmin/internal/order/domain"
)

func (s *Server) GetDefaultOrder(c *gin.Context) {
	resp, err := s.orderSvc.GetDefaultOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) SetDefaultOrder(c *gin.Context) {
	var req orderdomain.SetDefaultOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.CustomerID = c.Param("id")

	resp, err := s.orderSvc.SetDefaultOrder(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ModifyOrder(c *gin.Context) {
	var req orderdomain.ModifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.orderSvc.Modify(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ModifyAlternatingOrder(c *gin.Context) {
	var req orderdomain.ModifyAlternatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.orderSvc.ModifyAlternating(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) PauseOrder(c *gin.Context) {
	var req orderdomain.PauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.orderSvc.Pause(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ResumeOrder(c *gin.Context) {
	var req orderdomain.PauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.orderSvc.Resume(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) MonthlyOrders(c *gin.Context) {
	req := orderdomain.MonthlyOrdersRequest{
		CustomerID: strings.TrimSpace(c.Query("customer_id")),
	}
	var err error
	req.Month, req.Year, err = parseMonthYear(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.orderSvc.MonthlyOrders(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ClearOrderModifications(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		AbortWithError(c, invalidRequestError())
		return
	}

	count, err := s.orderSvc.ClearEndedBefore(c.Request.Context(), date)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows_affected": count})
}
