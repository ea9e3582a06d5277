package repositories

import "KidSafe/models"

type SessionRepository interface {
	Save(session *models.ChildSession) error
	DeleteByChildID(childID uint) error
}
