package controllers

import (
	"KidSafe/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var alertService *services.AlertService

func SetAlertService(service *services.AlertService) {
	alertService = service
}

func ListAlerts(c *gin.Context) {
	alerts, err := alertService.ListForParent(callerUID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": alerts})
}

func MarkAlertRead(c *gin.Context) {
	alertID, err := strconv.ParseUint(c.Param("alert_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
		return
	}

	alert, markErr := alertService.MarkRead(callerUID(c), uint(alertID))
	if markErr != nil {
		abortWithError(c, markErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": alert})
}

func UnreadAlertCount(c *gin.Context) {
	count, err := alertService.UnreadCount(callerUID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// ReportBlockedWebsite is called by the child device when a page visit is
// refused. Alerts fire only for hosts that really are blocklisted.
func ReportBlockedWebsite(c *gin.Context) {
	childID, ok := childIDParam(c)
	if !ok {
		return
	}
	if !authorizeChildAccess(c) {
		return
	}
	var input struct {
		Website string `json:"website" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	blocked, err := alertService.ReportBlockedAttempt(childID, input.Website)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocked": blocked})
}

func ReportAppInstall(c *gin.Context) {
	childID, ok := childIDParam(c)
	if !ok {
		return
	}
	if !authorizeChildAccess(c) {
		return
	}
	var input struct {
		App string `json:"app" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	alert, err := alertService.ReportAppInstall(childID, input.App)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": alert})
}
