package controllers

import (
	"KidSafe/services"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var usageService *services.UsageService

func SetUsageService(service *services.UsageService) {
	usageService = service
}

func RecordUsage(c *gin.Context) {
	childID, ok := childIDParam(c)
	if !ok {
		return
	}
	if !authorizeChildAccess(c) {
		return
	}
	var input services.RecordUsageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	usageLog, child, err := usageService.RecordUsage(childID, input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": usageLog, "child": child})
}

func DailyUsageReport(c *gin.Context) {
	childID, ok := childIDParam(c)
	if !ok {
		return
	}
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	daily, err := usageService.DailyAggregate(callerUID(c), childID, date)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": daily})
}

func WeeklyUsageReport(c *gin.Context) {
	childID, ok := childIDParam(c)
	if !ok {
		return
	}
	end := c.DefaultQuery("end", time.Now().Format("2006-01-02"))

	week, err := usageService.WeeklyAggregate(callerUID(c), childID, end)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": week})
}
