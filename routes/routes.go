package routes

import (
	"KidSafe/controllers"
	"KidSafe/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Public routes
	r.POST("/register/parent", controllers.RegisterParent)
	r.POST("/login/parent", controllers.LoginParent)
	r.POST("/login/child", controllers.LoginChild)
	// The login picker deliberately exposes only id, name and avatar.
	r.GET("/children/picker", controllers.ChildPicker)
	r.POST("/children/pair", controllers.PairDevice)

	r.GET("/ws", middlewares.AuthMiddleware(), controllers.ServeWs)
	r.POST("/auth/token-verify", middlewares.AuthMiddleware(), controllers.TokenVerify)

	// Parent account routes
	parents := r.Group("/parents")
	parents.Use(middlewares.AuthMiddleware(), middlewares.RequireParent())
	{
		parents.GET("/me", controllers.ReadParent)
		parents.PUT("/me", controllers.UpdateParent)
		parents.DELETE("/me", controllers.DeleteParent)
		parents.PUT("/me/device-token", controllers.UpdateDeviceToken)

		parents.GET("/me/children", controllers.ListChildren)
		parents.POST("/me/children", controllers.CreateChild)

		parents.GET("/me/alerts", controllers.ListAlerts)
		parents.GET("/me/alerts/unread", controllers.UnreadAlertCount)
		parents.PUT("/me/alerts/:alert_id/read", controllers.MarkAlertRead)
	}

	// Parent-managed child profile routes
	manage := r.Group("/children")
	manage.Use(middlewares.AuthMiddleware(), middlewares.RequireParent())
	{
		manage.PUT("/:child_id", controllers.UpdateChild)
		manage.DELETE("/:child_id", controllers.DeleteChild)
		manage.POST("/:child_id/lock", controllers.LockChild)
		manage.POST("/:child_id/unlock", controllers.UnlockChild)
		manage.POST("/:child_id/reset-usage", controllers.ResetChildUsage)
		manage.POST("/:child_id/blocklist", controllers.AddBlockedWebsite)
		manage.DELETE("/:child_id/blocklist", controllers.RemoveBlockedWebsite)
		manage.POST("/:child_id/pair-code", controllers.GeneratePairCode)
		manage.PUT("/:child_id/schedules", controllers.SetSchedules)
		manage.GET("/:child_id/usage/daily", controllers.DailyUsageReport)
		manage.GET("/:child_id/usage/weekly", controllers.WeeklyUsageReport)
	}

	// Routes shared by the parent dashboard and the child device
	children := r.Group("/children")
	children.Use(middlewares.AuthMiddleware())
	{
		children.GET("/:child_id", controllers.ReadChild)
		children.GET("/:child_id/schedules", controllers.GetSchedules)
		children.POST("/:child_id/logout", controllers.LogoutChild)
		children.POST("/:child_id/heartbeat", controllers.ChildHeartbeat)
		children.POST("/:child_id/usage", controllers.RecordUsage)
		children.POST("/:child_id/events/blocked-site", controllers.ReportBlockedWebsite)
		children.POST("/:child_id/events/app-install", controllers.ReportAppInstall)
	}
}
