package impl

import (
	"KidSafe/models"
	"KidSafe/repositories"

	"gorm.io/gorm"
)

type AlertRepositoryImpl struct {
	DB *gorm.DB
}

func NewAlertRepository(db *gorm.DB) repositories.AlertRepository {
	return &AlertRepositoryImpl{DB: db}
}

func (r *AlertRepositoryImpl) Save(alert *models.Alert) error {
	return r.DB.Save(alert).Error
}

func (r *AlertRepositoryImpl) FindByID(id uint) (models.Alert, error) {
	var alert models.Alert
	if err := r.DB.First(&alert, id).Error; err != nil {
		return models.Alert{}, err
	}
	return alert, nil
}

// FindByChildIDs returns the feed most-recent-first.
func (r *AlertRepositoryImpl) FindByChildIDs(childIDs []uint) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.DB.Where("child_id IN ?", childIDs).
		Order("timestamp desc").Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *AlertRepositoryImpl) CountUnreadByChildIDs(childIDs []uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Alert{}).
		Where("child_id IN ? AND read = ?", childIDs, false).Count(&count).Error
	return count, err
}
