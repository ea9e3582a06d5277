package repositories

import "KidSafe/models"

type ChildRepository interface {
	FindByID(id uint) (models.Child, error)
	FindByParentID(parentID uint) ([]models.Child, error)
	FindAll() ([]models.Child, error)
	FindByPairCode(code string) (models.Child, error)
	CountByPairCode(code string, count *int64) error
	Create(child *models.Child) error
	Save(child models.Child) error
	Delete(child models.Child) error

	AddBlockedWebsite(childID uint, hostname string) error
	RemoveBlockedWebsite(childID uint, hostname string) error
}
