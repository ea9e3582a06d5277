package services

import (
	"KidSafe/models"
	"KidSafe/repositories"
	"KidSafe/websocket"
	"fmt"
	"log"
	"time"
)

// AlertService owns the alert feed. Alerts are only ever created here, in
// response to system events; nothing user-authored enters the feed.
type AlertService struct {
	AlertRepo   repositories.AlertRepository
	ChildRepo   repositories.ChildRepository
	ParentRepo  repositories.ParentRepository
	Notifier    Notifier
	Broadcaster Broadcaster
}

func NewAlertService(alertRepo repositories.AlertRepository, childRepo repositories.ChildRepository, parentRepo repositories.ParentRepository) *AlertService {
	return &AlertService{AlertRepo: alertRepo, ChildRepo: childRepo, ParentRepo: parentRepo}
}

// Append stores a new alert and best-effort notifies the parent via push
// and the realtime feed. Delivery failures are logged, never returned: a
// lost notification must not fail the action that produced the alert.
func (s *AlertService) Append(child models.Child, alertType, message string) (models.Alert, error) {
	alert := models.Alert{
		ChildID:   child.ID,
		Type:      alertType,
		Message:   message,
		Timestamp: time.Now(),
		Read:      false,
	}
	if err := s.AlertRepo.Save(&alert); err != nil {
		return models.Alert{}, err
	}

	parent, err := s.ParentRepo.FindByID(child.ParentID)
	if err != nil {
		log.Printf("[Alerts] parent %d not found for alert %d: %v", child.ParentID, alert.ID, err)
		return alert, nil
	}

	if s.Notifier != nil {
		data := map[string]string{"alert_type": alertType, "child_id": fmt.Sprint(child.ID)}
		if err := s.Notifier.NotifyParent(parent, "KidSafe", message, data); err != nil {
			log.Printf("[Alerts] push to parent %s failed: %v", parent.FirebaseUID, err)
		}
	}
	if s.Broadcaster != nil {
		s.Broadcaster.BroadcastToFamily(parent.FirebaseUID, websocket.Event{
			Type: websocket.EventAlertCreated,
			Data: alert,
		})
	}

	return alert, nil
}

// ListForParent returns the parent's feed most-recent-first.
func (s *AlertService) ListForParent(parentFirebaseUID string) ([]models.Alert, error) {
	childIDs, err := s.familyChildIDs(parentFirebaseUID)
	if err != nil {
		return nil, err
	}
	if len(childIDs) == 0 {
		return []models.Alert{}, nil
	}
	return s.AlertRepo.FindByChildIDs(childIDs)
}

// MarkRead flips the read flag. Marking an already-read alert is a no-op.
func (s *AlertService) MarkRead(parentFirebaseUID string, alertID uint) (models.Alert, error) {
	alert, err := s.AlertRepo.FindByID(alertID)
	if err != nil {
		return models.Alert{}, models.ErrAlertNotFound
	}

	child, err := s.ChildRepo.FindByID(alert.ChildID)
	if err != nil {
		return models.Alert{}, models.ErrAlertNotFound
	}
	parent, err := s.ParentRepo.FindByFirebaseUID(parentFirebaseUID)
	if err != nil || child.ParentID != parent.ID {
		return models.Alert{}, models.ErrNotFamilyMember
	}

	if alert.Read {
		return alert, nil
	}
	alert.Read = true
	if err := s.AlertRepo.Save(&alert); err != nil {
		return models.Alert{}, err
	}
	return alert, nil
}

func (s *AlertService) UnreadCount(parentFirebaseUID string) (int64, error) {
	childIDs, err := s.familyChildIDs(parentFirebaseUID)
	if err != nil {
		return 0, err
	}
	if len(childIDs) == 0 {
		return 0, nil
	}
	return s.AlertRepo.CountUnreadByChildIDs(childIDs)
}

// ReportBlockedAttempt handles a child device reporting a visit to a
// website. An alert is generated only when the normalized hostname is
// actually on the child's blocklist; other visits are ignored.
func (s *AlertService) ReportBlockedAttempt(childID uint, rawWebsite string) (bool, error) {
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return false, models.ErrProfileNotFound
	}
	if !child.IsWebsiteBlocked(rawWebsite) {
		return false, nil
	}

	hostname := models.NormalizeWebsite(rawWebsite)
	message := fmt.Sprintf("%s attempted to visit blocked site %s", child.Name, hostname)
	if _, err := s.Append(child, models.AlertTypeBlockedWebsite, message); err != nil {
		return true, err
	}
	return true, nil
}

// ReportAppInstall handles a child device reporting a newly installed app.
func (s *AlertService) ReportAppInstall(childID uint, appName string) (models.Alert, error) {
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return models.Alert{}, models.ErrProfileNotFound
	}
	message := fmt.Sprintf("New app installed on %s's device: %s", child.Name, appName)
	return s.Append(child, models.AlertTypeNewApp, message)
}

func (s *AlertService) familyChildIDs(parentFirebaseUID string) ([]uint, error) {
	parent, err := s.ParentRepo.FindByFirebaseUID(parentFirebaseUID)
	if err != nil {
		return nil, models.ErrProfileNotFound
	}
	children, err := s.ChildRepo.FindByParentID(parent.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(children))
	for _, child := range children {
		ids = append(ids, child.ID)
	}
	return ids, nil
}
