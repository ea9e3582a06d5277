package repositories

import "KidSafe/models"

type AlertRepository interface {
	Save(alert *models.Alert) error
	FindByID(id uint) (models.Alert, error)
	FindByChildIDs(childIDs []uint) ([]models.Alert, error)
	CountUnreadByChildIDs(childIDs []uint) (int64, error)
}
