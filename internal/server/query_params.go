package server

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func parseMonthYear(c *gin.Context) (int, int, error) {
	month, err := strconv.Atoi(strings.TrimSpace(c.Query("month")))
	if err != nil {
		return 0, 0, invalidRequestError()
	}
	year, err := strconv.Atoi(strings.TrimSpace(c.Query("year")))
	if err != nil {
		return 0, 0, invalidRequestError()
	}
	return month, year, nil
}
