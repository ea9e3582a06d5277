package controllers

import (
	"KidSafe/websocket"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var WebSocketHub *websocket.Hub

func SetWebSocketHub(hub *websocket.Hub) {
	WebSocketHub = hub
	go WebSocketHub.Run()
}

// ServeWs attaches an authenticated client to its family's event feed.
// The family is always derived from the token: parents watch their own
// family, child devices the family they belong to.
func ServeWs(c *gin.Context) {
	uid := callerUID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var parentUID string
	userType, _ := c.Get("user_type")
	switch userType {
	case "parent":
		parentUID = uid
	case "child":
		childID, err := strconv.ParseUint(uid, 10, 64)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		familyUID, err := childService.FamilyUID(uint(childID))
		if err != nil {
			abortWithError(c, err)
			return
		}
		parentUID = familyUID
	default:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	websocket.ServeWs(WebSocketHub, c.Writer, c.Request, uid, parentUID, userType.(string))
}
