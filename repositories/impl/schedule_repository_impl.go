package impl

import (
	"KidSafe/models"
	"KidSafe/repositories"

	"gorm.io/gorm"
)

type ScheduleRepositoryImpl struct {
	DB *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) repositories.ScheduleRepository {
	return &ScheduleRepositoryImpl{DB: db}
}

func (r *ScheduleRepositoryImpl) FindByChildID(childID uint) ([]models.DowntimeSchedule, error) {
	var schedules []models.DowntimeSchedule
	if err := r.DB.Where("child_id = ?", childID).Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// ReplaceForChild swaps the child's downtime windows in one transaction.
func (r *ScheduleRepositoryImpl) ReplaceForChild(childID uint, schedules []models.DowntimeSchedule) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("child_id = ?", childID).Delete(&models.DowntimeSchedule{}).Error; err != nil {
			return err
		}
		for i := range schedules {
			schedules[i].ID = 0
			schedules[i].ChildID = childID
			if err := tx.Create(&schedules[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
