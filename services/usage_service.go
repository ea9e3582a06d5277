package services

import (
	"KidSafe/models"
	"KidSafe/repositories"
	"KidSafe/websocket"
	"fmt"
	"log"
	"time"
)

const dateLayout = "2006-01-02"

type UsageService struct {
	UsageRepo   repositories.UsageRepository
	ChildRepo   repositories.ChildRepository
	ParentRepo  repositories.ParentRepository
	Alerts      *AlertService
	Broadcaster Broadcaster
}

func NewUsageService(usageRepo repositories.UsageRepository, childRepo repositories.ChildRepository, parentRepo repositories.ParentRepository, alerts *AlertService) *UsageService {
	return &UsageService{UsageRepo: usageRepo, ChildRepo: childRepo, ParentRepo: parentRepo, Alerts: alerts}
}

// RecordUsageInput is one usage session reported by the child device.
// Exactly one of App and Website must be set.
type RecordUsageInput struct {
	App       string    `json:"app"`
	Website   string    `json:"website"`
	Category  string    `json:"category"`
	Duration  int       `json:"duration"` // minutes
	StartTime time.Time `json:"start_time"`
}

// RecordUsage appends an immutable ledger entry, charges the session
// against the child's daily limit and runs the lock policy. A false→true
// lock transition appends exactly one time_limit alert.
func (s *UsageService) RecordUsage(childID uint, input RecordUsageInput) (models.UsageLog, models.Child, error) {
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return models.UsageLog{}, models.Child{}, models.ErrProfileNotFound
	}

	if (input.App == "") == (input.Website == "") {
		return models.UsageLog{}, models.Child{}, fmt.Errorf("%w: exactly one of app and website must be set", models.ErrValidation)
	}
	if !models.IsValidCategory(input.Category) {
		return models.UsageLog{}, models.Child{}, fmt.Errorf("%w: unknown category %q", models.ErrValidation, input.Category)
	}
	if input.Duration <= 0 {
		return models.UsageLog{}, models.Child{}, fmt.Errorf("%w: duration must be positive", models.ErrValidation)
	}

	start := input.StartTime
	if start.IsZero() {
		start = time.Now().Add(-time.Duration(input.Duration) * time.Minute)
	}

	usageLog := models.UsageLog{
		ChildID:   child.ID,
		Date:      start.Format(dateLayout),
		App:       input.App,
		Website:   models.NormalizeWebsite(input.Website),
		Category:  input.Category,
		Duration:  input.Duration,
		StartTime: start,
		EndTime:   start.Add(time.Duration(input.Duration) * time.Minute),
	}
	if err := s.UsageRepo.Save(&usageLog); err != nil {
		return models.UsageLog{}, models.Child{}, err
	}

	child.UsedTime += input.Duration
	locked := applyTimeLimit(&child)
	if err := s.ChildRepo.Save(child); err != nil {
		return models.UsageLog{}, models.Child{}, err
	}

	if locked && s.Alerts != nil {
		message := fmt.Sprintf("%s's device has been locked", child.Name)
		if _, err := s.Alerts.Append(child, models.AlertTypeTimeLimit, message); err != nil {
			log.Printf("Failed to append lock alert for child %d: %v", child.ID, err)
		}
	}
	if s.Broadcaster != nil {
		if parent, err := s.ParentRepo.FindByID(child.ParentID); err == nil {
			eventType := websocket.EventChildUpdated
			if locked {
				eventType = websocket.EventChildLocked
			}
			s.Broadcaster.BroadcastToFamily(parent.FirebaseUID, websocket.Event{Type: eventType, Data: child})
		}
	}

	return usageLog, child, nil
}

// DailyAggregate sums the ledger for one day grouped by category. The
// total always equals the sum of the breakdown values. Reports are only
// served to the child's own parent.
func (s *UsageService) DailyAggregate(parentFirebaseUID string, childID uint, date string) (models.DailyUsage, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return models.DailyUsage{}, fmt.Errorf("%w: invalid date %q", models.ErrValidation, date)
	}
	if _, err := s.childForParent(parentFirebaseUID, childID); err != nil {
		return models.DailyUsage{}, err
	}

	logs, err := s.UsageRepo.FindByChildAndDate(childID, date)
	if err != nil {
		return models.DailyUsage{}, err
	}
	return aggregate(date, logs), nil
}

// WeeklyAggregate returns seven consecutive daily aggregates ending at the
// given date, oldest first.
func (s *UsageService) WeeklyAggregate(parentFirebaseUID string, childID uint, endDate string) ([]models.DailyUsage, error) {
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", models.ErrValidation, endDate)
	}
	if _, err := s.childForParent(parentFirebaseUID, childID); err != nil {
		return nil, err
	}

	from := end.AddDate(0, 0, -6).Format(dateLayout)
	logs, err := s.UsageRepo.FindByChildAndDateRange(childID, from, endDate)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]models.UsageLog)
	for _, entry := range logs {
		byDate[entry.Date] = append(byDate[entry.Date], entry)
	}

	week := make([]models.DailyUsage, 0, 7)
	for i := 6; i >= 0; i-- {
		date := end.AddDate(0, 0, -i).Format(dateLayout)
		week = append(week, aggregate(date, byDate[date]))
	}
	return week, nil
}

func (s *UsageService) childForParent(parentFirebaseUID string, childID uint) (models.Child, error) {
	parent, err := s.ParentRepo.FindByFirebaseUID(parentFirebaseUID)
	if err != nil {
		return models.Child{}, models.ErrProfileNotFound
	}
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return models.Child{}, models.ErrProfileNotFound
	}
	if child.ParentID != parent.ID {
		return models.Child{}, models.ErrNotFamilyMember
	}
	return child, nil
}

func aggregate(date string, logs []models.UsageLog) models.DailyUsage {
	daily := models.DailyUsage{
		Date:                date,
		BreakdownByCategory: make(map[string]int),
	}
	for _, entry := range logs {
		daily.BreakdownByCategory[entry.Category] += entry.Duration
		daily.TotalTime += entry.Duration
	}
	return daily
}
