package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

type calendarRequest struct {
	portfolioScope
}

func (m ApiHandler) calendar(c *gin.Context) {
	var requestBody calendarRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	userID, portfolioName, err := requestBody.normalized()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	events, err := m.CalendarService.GetUpcomingEvents(c, userID, portfolioName, time.Now().UTC())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"events": events})
}
