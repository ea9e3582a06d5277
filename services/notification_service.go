package services

import (
	"KidSafe/models"
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// NotificationService pushes alert notifications to the parent's device
// through Firebase Cloud Messaging.
type NotificationService struct {
	FCMClient *messaging.Client
}

func NewNotificationService(app *firebase.App) (*NotificationService, error) {
	client, err := app.Messaging(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error initializing FCM client: %w", err)
	}
	return &NotificationService{FCMClient: client}, nil
}

func (s *NotificationService) NotifyParent(parent models.Parent, title, body string, data map[string]string) error {
	if parent.DeviceToken == "" {
		// No registered device, nothing to deliver.
		return nil
	}

	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:  data,
		Token: parent.DeviceToken,
	}

	resp, err := s.FCMClient.Send(context.Background(), message)
	if err != nil {
		log.Printf("[FCM] failed to send notification to parent %s: %v", parent.FirebaseUID, err)
		return err
	}
	log.Printf("[FCM] notification sent to parent %s: %s", parent.FirebaseUID, resp)
	return nil
}
