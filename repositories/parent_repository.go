package repositories

import "KidSafe/models"

type ParentRepository interface {
	FindByID(id uint) (models.Parent, error)
	FindByFirebaseUID(firebaseUID string) (models.Parent, error)
	FindByEmail(email string) (models.Parent, error)
	Save(parent *models.Parent) error
	DeleteByFirebaseUID(firebaseUID string) error
}
