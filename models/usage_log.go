package models

import "time"

// Usage categories reported by the child device.
const (
	CategoryGames         = "games"
	CategorySocial        = "social"
	CategoryEducation     = "education"
	CategoryEntertainment = "entertainment"
	CategoryProductivity  = "productivity"
	CategoryOther         = "other"
)

var usageCategories = map[string]bool{
	CategoryGames:         true,
	CategorySocial:        true,
	CategoryEducation:     true,
	CategoryEntertainment: true,
	CategoryProductivity:  true,
	CategoryOther:         true,
}

func IsValidCategory(category string) bool {
	return usageCategories[category]
}

// UsageLog is an immutable entry in the per-child usage ledger. Exactly one
// of App and Website is set.
type UsageLog struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	ChildID   uint      `json:"child_id" gorm:"index"`
	Date      string    `json:"date" gorm:"index;size:10"` // "2006-01-02"
	App       string    `json:"app,omitempty"`
	Website   string    `json:"website,omitempty"`
	Category  string    `json:"category"`
	Duration  int       `json:"duration"` // minutes
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// DailyUsage is derived from the ledger, never stored. TotalTime always
// equals the sum of the breakdown values.
type DailyUsage struct {
	Date                string         `json:"date"`
	TotalTime           int            `json:"total_time"`
	BreakdownByCategory map[string]int `json:"breakdown_by_category"`
}
