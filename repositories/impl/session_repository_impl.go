package impl

import (
	"KidSafe/models"
	"KidSafe/repositories"

	"gorm.io/gorm"
)

type SessionRepositoryImpl struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) repositories.SessionRepository {
	return &SessionRepositoryImpl{DB: db}
}

func (r *SessionRepositoryImpl) Save(session *models.ChildSession) error {
	return r.DB.Save(session).Error
}

func (r *SessionRepositoryImpl) DeleteByChildID(childID uint) error {
	return r.DB.Where("child_id = ?", childID).Delete(&models.ChildSession{}).Error
}
