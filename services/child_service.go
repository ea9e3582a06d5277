package services

import (
	"KidSafe/models"
	"KidSafe/repositories"
	"KidSafe/websocket"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var pinPattern = regexp.MustCompile(`^\d{4}$`)

type ChildService struct {
	ChildRepo    repositories.ChildRepository
	ParentRepo   repositories.ParentRepository
	SessionRepo  repositories.SessionRepository
	ScheduleRepo repositories.ScheduleRepository
	Alerts       *AlertService
	Broadcaster  Broadcaster
}

func NewChildService(
	childRepo repositories.ChildRepository,
	parentRepo repositories.ParentRepository,
	sessionRepo repositories.SessionRepository,
	scheduleRepo repositories.ScheduleRepository,
	alerts *AlertService,
) *ChildService {
	return &ChildService{
		ChildRepo:    childRepo,
		ParentRepo:   parentRepo,
		SessionRepo:  sessionRepo,
		ScheduleRepo: scheduleRepo,
		Alerts:       alerts,
	}
}

// CreateChildInput carries the parent-supplied fields. UsedTime, IsOnline
// and IsLocked are always forced to their initial values server-side.
type CreateChildInput struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Avatar         string `json:"avatar"`
	DeviceID       string `json:"device_id"`
	DailyTimeLimit int    `json:"daily_time_limit"`
	Pin            string `json:"pin"`
}

// UpdateChildInput applies partial updates; zero values leave the stored
// field untouched, matching the dashboard's patch semantics.
type UpdateChildInput struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Avatar         string `json:"avatar"`
	DeviceID       string `json:"device_id"`
	DailyTimeLimit int    `json:"daily_time_limit"`
	Pin            string `json:"pin"`
}

// ChildStatus is what a child device renders: the time display or the lock
// screen. DowntimeActive locks the screen without touching the profile.
type ChildStatus struct {
	ChildID          uint    `json:"child_id"`
	Name             string  `json:"name"`
	DailyTimeLimit   int     `json:"daily_time_limit"`
	UsedTime         int     `json:"used_time"`
	RemainingMinutes int     `json:"remaining_minutes"`
	RemainingHours   int     `json:"remaining_hours"`
	RemainingMins    int     `json:"remaining_mins"`
	UsedPercent      float64 `json:"used_percent"`
	IsLowTime        bool    `json:"is_low_time"`
	IsLocked         bool    `json:"is_locked"`
	DowntimeActive   bool    `json:"downtime_active"`
}

// applyTimeLimit enforces the lock policy after any mutation of used time
// or the daily limit. It reports a false→true transition so the caller can
// append the alert exactly once; an already-locked profile stays locked
// and produces no transition.
func applyTimeLimit(child *models.Child) bool {
	if child.ShouldLock() && !child.IsLocked {
		child.IsLocked = true
		return true
	}
	return false
}

func (s *ChildService) ListForParent(parentFirebaseUID string) ([]models.Child, error) {
	parent, err := s.ParentRepo.FindByFirebaseUID(parentFirebaseUID)
	if err != nil {
		return nil, models.ErrProfileNotFound
	}
	return s.ChildRepo.FindByParentID(parent.ID)
}

// Picker lists every child as id/name/avatar only, for the login screen.
func (s *ChildService) Picker() ([]models.ChildSummary, error) {
	children, err := s.ChildRepo.FindAll()
	if err != nil {
		return nil, err
	}
	summaries := make([]models.ChildSummary, 0, len(children))
	for _, child := range children {
		summaries = append(summaries, child.Summary())
	}
	return summaries, nil
}

func (s *ChildService) GetChild(childID uint) (models.Child, error) {
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return models.Child{}, models.ErrProfileNotFound
	}
	return child, nil
}

// VerifyOwnership checks that the child belongs to the calling parent's
// family without exposing the record.
func (s *ChildService) VerifyOwnership(parentFirebaseUID string, childID uint) error {
	_, _, err := s.childForParent(parentFirebaseUID, childID)
	return err
}

// FamilyUID resolves the firebase uid of the family a child belongs to.
func (s *ChildService) FamilyUID(childID uint) (string, error) {
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return "", models.ErrProfileNotFound
	}
	parent, err := s.ParentRepo.FindByID(child.ParentID)
	if err != nil {
		return "", models.ErrProfileNotFound
	}
	return parent.FirebaseUID, nil
}

func (s *ChildService) CreateChild(parentFirebaseUID string, input CreateChildInput) (models.Child, error) {
	parent, err := s.ParentRepo.FindByFirebaseUID(parentFirebaseUID)
	if err != nil {
		return models.Child{}, models.ErrProfileNotFound
	}

	if input.Name == "" {
		return models.Child{}, fmt.Errorf("%w: name cannot be empty", models.ErrValidation)
	}
	if input.DeviceID == "" {
		return models.Child{}, fmt.Errorf("%w: device_id cannot be empty", models.ErrValidation)
	}
	if input.DailyTimeLimit <= 0 {
		return models.Child{}, fmt.Errorf("%w: daily_time_limit must be positive", models.ErrValidation)
	}
	if !pinPattern.MatchString(input.Pin) {
		return models.Child{}, fmt.Errorf("%w: pin must be exactly 4 digits", models.ErrValidation)
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(input.Pin), bcrypt.DefaultCost)
	if err != nil {
		return models.Child{}, err
	}

	child := models.Child{
		ParentID:       parent.ID,
		Name:           input.Name,
		Age:            input.Age,
		Avatar:         input.Avatar,
		DeviceID:       input.DeviceID,
		PinHash:        string(pinHash),
		DailyTimeLimit: input.DailyTimeLimit,
		UsedTime:       0,
		IsOnline:       false,
		IsLocked:       false,
	}
	if err := s.ChildRepo.Create(&child); err != nil {
		return models.Child{}, err
	}

	s.broadcastChildUpdate(parent.FirebaseUID, child, websocket.EventChildUpdated)
	return child, nil
}

func (s *ChildService) UpdateChild(parentFirebaseUID string, childID uint, input UpdateChildInput) (models.Child, error) {
	child, parent, err := s.childForParent(parentFirebaseUID, childID)
	if err != nil {
		return models.Child{}, err
	}

	if input.Name != "" {
		child.Name = input.Name
	}
	if input.Age != 0 {
		child.Age = input.Age
	}
	if input.Avatar != "" {
		child.Avatar = input.Avatar
	}
	if input.DeviceID != "" {
		child.DeviceID = input.DeviceID
	}
	if input.Pin != "" {
		if !pinPattern.MatchString(input.Pin) {
			return models.Child{}, fmt.Errorf("%w: pin must be exactly 4 digits", models.ErrValidation)
		}
		pinHash, err := bcrypt.GenerateFromPassword([]byte(input.Pin), bcrypt.DefaultCost)
		if err != nil {
			return models.Child{}, err
		}
		child.PinHash = string(pinHash)
	}

	locked := false
	if input.DailyTimeLimit > 0 && input.DailyTimeLimit != child.DailyTimeLimit {
		child.DailyTimeLimit = input.DailyTimeLimit
		locked = applyTimeLimit(&child)
	}

	if err := s.ChildRepo.Save(child); err != nil {
		return models.Child{}, err
	}
	if locked {
		s.appendLockAlert(child)
	}
	s.broadcastChildUpdate(parent.FirebaseUID, child, websocket.EventChildUpdated)
	return child, nil
}

func (s *ChildService) DeleteChild(parentFirebaseUID string, childID uint) error {
	child, parent, err := s.childForParent(parentFirebaseUID, childID)
	if err != nil {
		return err
	}
	if err := s.SessionRepo.DeleteByChildID(child.ID); err != nil {
		return err
	}
	if err := s.ChildRepo.Delete(child); err != nil {
		return err
	}
	s.broadcastChildUpdate(parent.FirebaseUID, child, websocket.EventChildUpdated)
	return nil
}

// LockChild is the parent-initiated lock. The transition appends exactly
// one time_limit alert; locking an already-locked device does nothing.
func (s *ChildService) LockChild(parentFirebaseUID string, childID uint) (models.Child, error) {
	child, parent, err := s.childForParent(parentFirebaseUID, childID)
	if err != nil {
		return models.Child{}, err
	}
	if child.IsLocked {
		return child, nil
	}

	child.IsLocked = true
	if err := s.ChildRepo.Save(child); err != nil {
		return models.Child{}, err
	}
	s.appendLockAlert(child)
	s.broadcastChildUpdate(parent.FirebaseUID, child, websocket.EventChildLocked)
	return child, nil
}

func (s *ChildService) UnlockChild(parentFirebaseUID string, childID uint) (models.Child, error) {
	child, parent, err := s.childForParent(parentFirebaseUID, childID)
	if err != nil {
		return models.Child{}, err
	}
	if !child.IsLocked {
		return child, nil
	}

	child.IsLocked = false
	if err := s.ChildRepo.Save(child); err != nil {
		return models.Child{}, err
	}
	s.broadcastChildUpdate(parent.FirebaseUID, child, websocket.EventChildUpdated)
	return child, nil
}

// ResetUsage is the explicit parent action standing in for the daily
// rollover: used time returns to zero and a time-limit lock is released.
func (s *ChildService) ResetUsage(parentFirebaseUID string, childID uint) (models.Child, error) {
	child, parent, err := s.childForParent(parentFirebaseUID, childID)
	if err != nil {
		return models.Child{}, err
	}

	child.UsedTime = 0
	child.IsLocked = false
	if err := s.ChildRepo.Save(child); err != nil {
		return models.Child{}, err
	}
	s.broadcastChildUpdate(parent.FirebaseUID, child, websocket.EventChildUpdated)
	return child, nil
}

func (s *ChildService) AddBlockedWebsite(parentFirebaseUID string, childID uint, rawWebsite string) (models.Child, error) {
	child, parent, err := s.childForParent(parentFirebaseUID, childID)
	if err != nil {
		return models.Child{}, err
	}

	hostname := models.NormalizeWebsite(rawWebsite)
	if hostname == "" {
		return models.Child{}, fmt.Errorf("%w: website cannot be empty", models.ErrValidation)
	}
	if child.IsWebsiteBlocked(hostname) {
		return models.Child{}, models.ErrAlreadyBlocked
	}

	if err := s.ChildRepo.AddBlockedWebsite(child.ID, hostname); err != nil {
		return models.Child{}, err
	}
	child, err = s.ChildRepo.FindByID(child.ID)
	if err != nil {
		return models.Child{}, err
	}
	s.broadcastChildUpdate(parent.FirebaseUID, child, websocket.EventChildUpdated)
	return child, nil
}

// RemoveBlockedWebsite deletes an exact hostname match; removing a
// non-member is a no-op.
func (s *ChildService) RemoveBlockedWebsite(parentFirebaseUID string, childID uint, hostname string) (models.Child, error) {
	child, parent, err := s.childForParent(parentFirebaseUID, childID)
	if err != nil {
		return models.Child{}, err
	}

	if err := s.ChildRepo.RemoveBlockedWebsite(child.ID, hostname); err != nil {
		return models.Child{}, err
	}
	child, err = s.ChildRepo.FindByID(child.ID)
	if err != nil {
		return models.Child{}, err
	}
	s.broadcastChildUpdate(parent.FirebaseUID, child, websocket.EventChildUpdated)
	return child, nil
}

// GeneratePairCode issues a unique 4-digit code valid for 24 hours that a
// child device redeems to bind itself to the profile.
func (s *ChildService) GeneratePairCode(parentFirebaseUID string, childID uint) (string, error) {
	child, _, err := s.childForParent(parentFirebaseUID, childID)
	if err != nil {
		return "", err
	}

	var code string
	for {
		code = fmt.Sprintf("%04d", 1000+rand.Intn(9000))
		var count int64
		if err := s.ChildRepo.CountByPairCode(code, &count); err != nil {
			return "", err
		}
		if count == 0 {
			break
		}
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	child.PairCode = code
	child.PairCodeExpiresAt = &expiresAt
	if err := s.ChildRepo.Save(child); err != nil {
		return "", err
	}
	return code, nil
}

func (s *ChildService) PairDevice(code, deviceID string) (models.Child, error) {
	if deviceID == "" {
		return models.Child{}, fmt.Errorf("%w: device_id cannot be empty", models.ErrValidation)
	}

	child, err := s.ChildRepo.FindByPairCode(code)
	if err != nil || !child.IsPairCodeValid() {
		return models.Child{}, models.ErrInvalidPairCode
	}

	child.DeviceID = deviceID
	child.IsOnline = true
	child.PairCode = ""
	child.PairCodeExpiresAt = nil
	if err := s.ChildRepo.Save(child); err != nil {
		return models.Child{}, err
	}

	if parent, err := s.ParentRepo.FindByID(child.ParentID); err == nil {
		s.broadcastChildUpdate(parent.FirebaseUID, child, websocket.EventChildUpdated)
	}
	return child, nil
}

// Heartbeat marks the device online and returns the state the child screen
// renders. Downtime windows lock the screen without mutating the profile.
func (s *ChildService) Heartbeat(childID uint) (ChildStatus, error) {
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return ChildStatus{}, models.ErrProfileNotFound
	}

	if !child.IsOnline {
		child.IsOnline = true
		if err := s.ChildRepo.Save(child); err != nil {
			return ChildStatus{}, err
		}
	}

	return s.statusFor(child)
}

func (s *ChildService) statusFor(child models.Child) (ChildStatus, error) {
	downtime := false
	schedules, err := s.ScheduleRepo.FindByChildID(child.ID)
	if err != nil {
		return ChildStatus{}, err
	}
	now := time.Now()
	for _, schedule := range schedules {
		if schedule.InDowntime(now) {
			downtime = true
			break
		}
	}

	hours, mins := child.RemainingHoursMinutes()
	return ChildStatus{
		ChildID:          child.ID,
		Name:             child.Name,
		DailyTimeLimit:   child.DailyTimeLimit,
		UsedTime:         child.UsedTime,
		RemainingMinutes: child.RemainingTime(),
		RemainingHours:   hours,
		RemainingMins:    mins,
		UsedPercent:      child.UsedPercent(),
		IsLowTime:        child.IsLowTime(),
		IsLocked:         child.IsLocked || downtime,
		DowntimeActive:   downtime,
	}, nil
}

func (s *ChildService) GetSchedules(childID uint) ([]models.DowntimeSchedule, error) {
	if _, err := s.ChildRepo.FindByID(childID); err != nil {
		return nil, models.ErrProfileNotFound
	}
	return s.ScheduleRepo.FindByChildID(childID)
}

func (s *ChildService) SetSchedules(parentFirebaseUID string, childID uint, schedules []models.DowntimeSchedule) ([]models.DowntimeSchedule, error) {
	child, _, err := s.childForParent(parentFirebaseUID, childID)
	if err != nil {
		return nil, err
	}

	for _, schedule := range schedules {
		if _, err := time.Parse("15:04", schedule.StartTime); err != nil {
			return nil, fmt.Errorf("%w: invalid start_time %q", models.ErrValidation, schedule.StartTime)
		}
		if _, err := time.Parse("15:04", schedule.EndTime); err != nil {
			return nil, fmt.Errorf("%w: invalid end_time %q", models.ErrValidation, schedule.EndTime)
		}
		if schedule.DaysOfWeek == "" {
			return nil, fmt.Errorf("%w: days_of_week cannot be empty", models.ErrValidation)
		}
	}

	if err := s.ScheduleRepo.ReplaceForChild(child.ID, schedules); err != nil {
		return nil, err
	}
	return s.ScheduleRepo.FindByChildID(child.ID)
}

func (s *ChildService) appendLockAlert(child models.Child) {
	if s.Alerts == nil {
		return
	}
	message := fmt.Sprintf("%s's device has been locked", child.Name)
	if _, err := s.Alerts.Append(child, models.AlertTypeTimeLimit, message); err != nil {
		log.Printf("Failed to append lock alert for child %d: %v", child.ID, err)
	}
}

func (s *ChildService) broadcastChildUpdate(parentUID string, child models.Child, eventType string) {
	if s.Broadcaster == nil {
		return
	}
	s.Broadcaster.BroadcastToFamily(parentUID, websocket.Event{Type: eventType, Data: child})
}

// childForParent resolves a child and verifies it belongs to the calling
// parent. Every parent-scoped mutation goes through this check.
func (s *ChildService) childForParent(parentFirebaseUID string, childID uint) (models.Child, models.Parent, error) {
	parent, err := s.ParentRepo.FindByFirebaseUID(parentFirebaseUID)
	if err != nil {
		return models.Child{}, models.Parent{}, models.ErrProfileNotFound
	}
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return models.Child{}, models.Parent{}, models.ErrProfileNotFound
	}
	if child.ParentID != parent.ID {
		return models.Child{}, models.Parent{}, models.ErrNotFamilyMember
	}
	return child, parent, nil
}
