package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	summarydomain "github.com/praneeth8555/dairyadmin/internal/summary/domain"
)

func (s *Server) DailySummary(c *gin.Context) {
	resp, err := s.summarySvc.RoomDaily(c.Request.Context(), dailyRequest(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DailyTotalSummary(c *gin.Context) {
	resp, err := s.summarySvc.TotalDaily(c.Request.Context(), dailyRequest(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DailySalesSummary(c *gin.Context) {
	resp, err := s.summarySvc.DailySales(c.Request.Context(), strings.TrimSpace(c.Query("date")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ExportDailySummary(c *gin.Context) {
	req := dailyRequest(c)
	out, err := s.summarySvc.ExportRoomDaily(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	filename := fmt.Sprintf("daily-summary-%s.xlsx", req.Date)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out)
}

func dailyRequest(c *gin.Context) summarydomain.DailyRequest {
	return summarydomain.DailyRequest{
		ApartmentID: strings.TrimSpace(c.Query("apartment_id")),
		Date:        strings.TrimSpace(c.Query("date")),
	}
}
