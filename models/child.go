package models

import (
	"strings"
	"time"
)

// LowTimeMinutes is the remaining-time threshold below which the child UI
// shows a warning. It is not a lock trigger.
const LowTimeMinutes = 15

type Child struct {
	ID                uint             `json:"id" gorm:"primary_key"`
	ParentID          uint             `json:"parent_id" gorm:"index"`
	Name              string           `json:"name"`
	Age               int              `json:"age"`
	Avatar            string           `json:"avatar"`
	DeviceID          string           `json:"device_id"`
	PinHash           string           `json:"-" gorm:"column:pin_hash"`
	DailyTimeLimit    int              `json:"daily_time_limit"` // minutes
	UsedTime          int              `json:"used_time"`        // minutes consumed today
	IsOnline          bool             `json:"is_online"`
	IsLocked          bool             `json:"is_locked"`
	BlockedWebsites   []BlockedWebsite `json:"blocked_websites" gorm:"foreignKey:ChildID"`
	PairCode          string           `json:"-" gorm:"size:4"`
	PairCodeExpiresAt *time.Time       `json:"-"`
}

type BlockedWebsite struct {
	ID       uint   `json:"id" gorm:"primary_key"`
	ChildID  uint   `json:"child_id" gorm:"index"`
	Hostname string `json:"hostname"`
}

// ChildSummary is the minimal view exposed to the unauthenticated login
// picker. Nothing beyond id, name and avatar leaves the server pre-auth.
type ChildSummary struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (c Child) Summary() ChildSummary {
	return ChildSummary{ID: c.ID, Name: c.Name, Avatar: c.Avatar}
}

// RemainingTime returns the minutes left today, clamped at zero.
func (c Child) RemainingTime() int {
	remaining := c.DailyTimeLimit - c.UsedTime
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RemainingHoursMinutes splits the remaining time for display.
func (c Child) RemainingHoursMinutes() (int, int) {
	remaining := c.RemainingTime()
	return remaining / 60, remaining % 60
}

// UsedPercent returns the share of the daily limit consumed, capped at 100.
func (c Child) UsedPercent() float64 {
	if c.DailyTimeLimit <= 0 {
		return 100
	}
	percent := float64(c.UsedTime) / float64(c.DailyTimeLimit) * 100
	if percent > 100 {
		return 100
	}
	return percent
}

func (c Child) IsLowTime() bool {
	return c.RemainingTime() <= LowTimeMinutes
}

// ShouldLock reports whether the daily limit is exhausted. The services
// layer is the single place that turns this into an is_locked transition.
func (c Child) ShouldLock() bool {
	return c.UsedTime >= c.DailyTimeLimit
}

func (c Child) IsPairCodeValid() bool {
	return c.PairCode != "" && c.PairCodeExpiresAt != nil && time.Now().Before(*c.PairCodeExpiresAt)
}

// IsWebsiteBlocked checks the blocklist against a raw URL or hostname.
func (c Child) IsWebsiteBlocked(rawWebsite string) bool {
	hostname := NormalizeWebsite(rawWebsite)
	for _, blocked := range c.BlockedWebsites {
		if blocked.Hostname == hostname {
			return true
		}
	}
	return false
}

// NormalizeWebsite lower-cases a raw website string and strips the scheme
// and a leading "www." so that "HTTP://WWW.Foo.COM" and "foo.com" collapse
// to the same blocklist entry.
func NormalizeWebsite(raw string) string {
	hostname := strings.ToLower(strings.TrimSpace(raw))
	hostname = strings.TrimPrefix(hostname, "http://")
	hostname = strings.TrimPrefix(hostname, "https://")
	hostname = strings.TrimPrefix(hostname, "www.")
	return hostname
}
