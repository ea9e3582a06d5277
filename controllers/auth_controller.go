package controllers

import (
	"KidSafe/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

var authService *services.AuthService

func SetAuthService(service *services.AuthService) {
	authService = service
}

func RegisterParent(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Avatar   string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parent, token, err := authService.RegisterParent(input.Name, input.Email, input.Password, input.Avatar)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": parent, "token": token})
}

func LoginParent(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parent, token, err := authService.LoginParent(input.Email, input.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": parent, "token": token})
}

func LoginChild(c *gin.Context) {
	var input struct {
		ChildID uint   `json:"child_id" binding:"required"`
		Pin     string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	child, token, err := authService.LoginChild(input.ChildID, input.Pin)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": child, "token": token})
}

func LogoutChild(c *gin.Context) {
	childID, ok := childIDParam(c)
	if !ok {
		return
	}
	if !authorizeChildAccess(c) {
		return
	}

	if err := authService.LogoutChild(childID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Child logged out successfully"})
}

// TokenVerify resolves the caller's token back to its account record.
func TokenVerify(c *gin.Context) {
	uid := callerUID(c)
	userType, _ := c.Get("user_type")

	account, err := authService.VerifyToken(uid, userType.(string))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": account, "user_type": userType})
}

// UpdateDeviceToken registers the parent device's FCM token.
func UpdateDeviceToken(c *gin.Context) {
	var input struct {
		DeviceToken string `json:"device_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := authService.UpdateDeviceToken(callerUID(c), input.DeviceToken); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device token updated"})
}
