package repositories

import "KidSafe/models"

type UsageRepository interface {
	Save(log *models.UsageLog) error
	FindByChildAndDate(childID uint, date string) ([]models.UsageLog, error)
	FindByChildAndDateRange(childID uint, from, to string) ([]models.UsageLog, error)
}
