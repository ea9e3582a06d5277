package models

import "time"

const (
	AlertTypeTimeLimit      = "time_limit"
	AlertTypeBlockedWebsite = "blocked_website"
	AlertTypeNewApp         = "new_app"
)

// Alert is a system-generated notification for the parent. Alerts are never
// user-authored and the only permitted mutation is flipping Read.
type Alert struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	ChildID   uint      `json:"child_id" gorm:"index"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
