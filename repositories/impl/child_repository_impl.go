package impl

import (
	"KidSafe/models"
	"KidSafe/repositories"

	"gorm.io/gorm"
)

type ChildRepositoryImpl struct {
	DB *gorm.DB
}

func NewChildRepository(db *gorm.DB) repositories.ChildRepository {
	return &ChildRepositoryImpl{DB: db}
}

func (r *ChildRepositoryImpl) FindByID(id uint) (models.Child, error) {
	var child models.Child
	if err := r.DB.Preload("BlockedWebsites").First(&child, id).Error; err != nil {
		return models.Child{}, err
	}
	return child, nil
}

func (r *ChildRepositoryImpl) FindByParentID(parentID uint) ([]models.Child, error) {
	var children []models.Child
	if err := r.DB.Preload("BlockedWebsites").Where("parent_id = ?", parentID).Find(&children).Error; err != nil {
		return nil, err
	}
	return children, nil
}

func (r *ChildRepositoryImpl) FindAll() ([]models.Child, error) {
	var children []models.Child
	if err := r.DB.Find(&children).Error; err != nil {
		return nil, err
	}
	return children, nil
}

func (r *ChildRepositoryImpl) FindByPairCode(code string) (models.Child, error) {
	var child models.Child
	if err := r.DB.Where("pair_code = ?", code).First(&child).Error; err != nil {
		return models.Child{}, err
	}
	return child, nil
}

func (r *ChildRepositoryImpl) CountByPairCode(code string, count *int64) error {
	return r.DB.Model(&models.Child{}).Where("pair_code = ?", code).Count(count).Error
}

func (r *ChildRepositoryImpl) Create(child *models.Child) error {
	return r.DB.Create(child).Error
}

func (r *ChildRepositoryImpl) Save(child models.Child) error {
	return r.DB.Save(&child).Error
}

func (r *ChildRepositoryImpl) Delete(child models.Child) error {
	if err := r.DB.Where("child_id = ?", child.ID).Delete(&models.BlockedWebsite{}).Error; err != nil {
		return err
	}
	return r.DB.Delete(&child).Error
}

func (r *ChildRepositoryImpl) AddBlockedWebsite(childID uint, hostname string) error {
	return r.DB.Create(&models.BlockedWebsite{ChildID: childID, Hostname: hostname}).Error
}

func (r *ChildRepositoryImpl) RemoveBlockedWebsite(childID uint, hostname string) error {
	return r.DB.Where("child_id = ? AND hostname = ?", childID, hostname).
		Delete(&models.BlockedWebsite{}).Error
}
