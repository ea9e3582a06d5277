package impl

import (
	"KidSafe/models"
	"KidSafe/repositories"

	"gorm.io/gorm"
)

type UsageRepositoryImpl struct {
	DB *gorm.DB
}

func NewUsageRepository(db *gorm.DB) repositories.UsageRepository {
	return &UsageRepositoryImpl{DB: db}
}

func (r *UsageRepositoryImpl) Save(log *models.UsageLog) error {
	return r.DB.Create(log).Error
}

func (r *UsageRepositoryImpl) FindByChildAndDate(childID uint, date string) ([]models.UsageLog, error) {
	var logs []models.UsageLog
	err := r.DB.Where("child_id = ? AND date = ?", childID, date).
		Order("start_time asc").Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *UsageRepositoryImpl) FindByChildAndDateRange(childID uint, from, to string) ([]models.UsageLog, error) {
	var logs []models.UsageLog
	err := r.DB.Where("child_id = ? AND date >= ? AND date <= ?", childID, from, to).
		Order("start_time asc").Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
