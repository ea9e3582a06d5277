package services

import (
	"KidSafe/models"
	"KidSafe/websocket"
)

// Notifier delivers a push notification to the parent's own device.
// Implemented by NotificationService over FCM; mocked in tests.
type Notifier interface {
	NotifyParent(parent models.Parent, title, body string, data map[string]string) error
}

// Broadcaster fans an event out to every dashboard client of a family.
// Satisfied by *websocket.Hub.
type Broadcaster interface {
	BroadcastToFamily(parentUID string, event websocket.Event)
}
