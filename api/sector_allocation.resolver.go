package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type sectorAllocationRequest struct {
	portfolioScope
}

func (m ApiHandler) sectorAllocation(c *gin.Context) {
	var requestBody sectorAllocationRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	userID, portfolioName, err := requestBody.normalized()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	allocations, err := m.AllocationService.GetSectorAllocation(c, userID, portfolioName)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"allocations": allocations})
}
