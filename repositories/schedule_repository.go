package repositories

import "KidSafe/models"

type ScheduleRepository interface {
	FindByChildID(childID uint) ([]models.DowntimeSchedule, error)
	ReplaceForChild(childID uint, schedules []models.DowntimeSchedule) error
}
