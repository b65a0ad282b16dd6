package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	billingdomain "github.com/praneeth8555/dairyadmin/internal/billing/domain"
)

func (s *Server) MonthlyBill(c *gin.Context) {
	req, err := s.monthlyBillRequest(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.billingSvc.MonthlyBill(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) MonthlyBillPDF(c *gin.Context) {
	req, err := s.monthlyBillRequest(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	out, err := s.billingSvc.MonthlyBillPDF(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	filename := fmt.Sprintf("bill-%s-%04d-%02d.pdf", req.CustomerID, req.Year, req.Month)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", out)
}

func (s *Server) monthlyBillRequest(c *gin.Context) (billingdomain.MonthlyBillRequest, error) {
	req := billingdomain.MonthlyBillRequest{
		CustomerID: strings.TrimSpace(c.Query("customer_id")),
	}
	var err error
	req.Month, req.Year, err = parseMonthYear(c)
	if err != nil {
		return billingdomain.MonthlyBillRequest{}, err
	}
	return req, nil
}
