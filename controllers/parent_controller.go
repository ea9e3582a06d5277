package controllers

import (
	"KidSafe/services"
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var parentService *services.ParentService

func SetParentService(service *services.ParentService) {
	parentService = service
}

func ReadParent(c *gin.Context) {
	parent, err := parentService.ReadParent(callerUID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Parent not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": parent})
}

func UpdateParent(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Avatar   string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	parent, err := parentService.UpdateParent(callerUID(c), services.UpdateParentInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Avatar:   input.Avatar,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Parent updated successfully", "data": parent})
}

func DeleteParent(c *gin.Context) {
	uid := callerUID(c)

	// Remove the Firebase account first; a stale local row is worse than a
	// stale Firebase one.
	client, err := services.GetAuthClient()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Firebase init failed: " + err.Error()})
		return
	}
	if err := client.DeleteUser(context.Background(), uid); err != nil {
		// The account may already be gone from Firebase; keep going.
		log.Printf("Failed to delete Firebase user %s: %v", uid, err)
	}

	if err := parentService.DeleteParent(uid); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Parent deleted successfully"})
}
