package models

import "time"

// ChildSession is the server-side record of a child login. Children have no
// Firebase account, so their sessions live here to survive restarts and to
// support explicit revocation on logout.
type ChildSession struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	ChildID   uint      `json:"child_id" gorm:"index"`
	Token     string    `json:"token" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s ChildSession) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
