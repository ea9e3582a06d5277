package controllers

import (
	"KidSafe/models"
	"KidSafe/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

var childService *services.ChildService

func SetChildService(service *services.ChildService) {
	childService = service
}

// ChildPicker serves the unauthenticated login picker. Only id, name and
// avatar are exposed.
func ChildPicker(c *gin.Context) {
	summaries, err := childService.Picker()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summaries})
}

func ListChildren(c *gin.Context) {
	children, err := childService.ListForParent(callerUID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": children})
}

func CreateChild(c *gin.Context) {
	var input services.CreateChildInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.CreateChild(callerUID(c), input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Child profile added", "data": child})
}

func ReadChild(c *gin.Context) {
	childID, ok := childIDParam(c)
	if !ok {
		return
	}

	if !authorizeChildAccess(c) {
		return
	}

	child, err := childService.GetChild(childID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": child})
}

func UpdateChild(c *gin.Context) {
	childID, ok := childIDParam(c)
	if !ok {
		return
	}
	var input services.UpdateChildInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.UpdateChild(callerUID(c), childID, input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "data": child})
}

func DeleteChild(c *gin.Context) {
	childID, ok := childIDParam(c)
	if !ok {
		return
	}

	if err := childService.DeleteChild(callerUID(c), childID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Child deleted successfully"})
}

func LockChild(c *gin.Context) {
	childID, ok := childIDParam(c)
	if !ok {
		return
	}

	child, err := childService.LockChild(callerUID(c), childID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device locked", "data": child})
}

func UnlockChild(c *gin.Context) {
	childID, ok := childIDParam(c)
	if !ok {
		return
	}

	child, err := childService.UnlockChild(callerUID(c), childID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device unlocked", "data": child})
}

func ResetChildUsage(c *gin.Context) {
	childID, ok := childIDParam(c)
	if !ok {
		return
	}

	child, err := childService.ResetUsage(callerUID(c), childID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usage reset", "data": child})
}

func AddBlockedWebsite(c *gin.Context) {
	childID, ok := childIDParam(c)
	if !ok {
		return
	}
	var input struct {
		Website string `json:"website" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.AddBlockedWebsite(callerUID(c), childID, input.Website)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Website blocked", "data": child})
}

func RemoveBlockedWebsite(c *gin.Context) {
	childID, ok := childIDParam(c)
	if !ok {
		return
	}
	var input struct {
		Website string `json:"website" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.RemoveBlockedWebsite(callerUID(c), childID, input.Website)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Website unblocked", "data": child})
}

func GeneratePairCode(c *gin.Context) {
	childID, ok := childIDParam(c)
	if !ok {
		return
	}

	code, err := childService.GeneratePairCode(callerUID(c), childID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": code})
}

func PairDevice(c *gin.Context) {
	var input struct {
		Code     string `json:"code" binding:"required"`
		DeviceID string `json:"device_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.PairDevice(input.Code, input.DeviceID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device paired", "data": child})
}

// ChildHeartbeat is polled by the child device; the response carries
// everything the time display or lock screen needs.
func ChildHeartbeat(c *gin.Context) {
	childID, ok := childIDParam(c)
	if !ok {
		return
	}
	if !authorizeChildAccess(c) {
		return
	}

	status, err := childService.Heartbeat(childID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": status})
}

func GetSchedules(c *gin.Context) {
	childID, ok := childIDParam(c)
	if !ok {
		return
	}
	if !authorizeChildAccess(c) {
		return
	}

	schedules, err := childService.GetSchedules(childID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": schedules})
}

func SetSchedules(c *gin.Context) {
	childID, ok := childIDParam(c)
	if !ok {
		return
	}
	var input struct {
		Schedules []models.DowntimeSchedule `json:"schedules" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	schedules, err := childService.SetSchedules(callerUID(c), childID, input.Schedules)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedules updated", "data": schedules})
}
