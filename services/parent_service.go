package services

import (
	"KidSafe/models"
	"KidSafe/repositories"

	"golang.org/x/crypto/bcrypt"
)

type ParentService struct {
	ParentRepo repositories.ParentRepository
	ChildRepo  repositories.ChildRepository
}

func NewParentService(parentRepo repositories.ParentRepository, childRepo repositories.ChildRepository) *ParentService {
	return &ParentService{ParentRepo: parentRepo, ChildRepo: childRepo}
}

type UpdateParentInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
}

func (s *ParentService) ReadParent(firebaseUID string) (models.Parent, error) {
	return s.ParentRepo.FindByFirebaseUID(firebaseUID)
}

func (s *ParentService) UpdateParent(firebaseUID string, input UpdateParentInput) (models.Parent, error) {
	parent, err := s.ParentRepo.FindByFirebaseUID(firebaseUID)
	if err != nil {
		return models.Parent{}, models.ErrProfileNotFound
	}

	if input.Name != "" {
		parent.Name = input.Name
	}
	if input.Email != "" {
		parent.Email = input.Email
	}
	if input.Avatar != "" {
		parent.Avatar = input.Avatar
	}
	if input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.Parent{}, err
		}
		parent.Password = string(hashedPassword)
	}

	if err := s.ParentRepo.Save(&parent); err != nil {
		return models.Parent{}, err
	}
	return parent, nil
}

// DeleteParent removes the parent row together with the family's children.
// Orphaned alerts and usage rows are left for cleanup jobs.
func (s *ParentService) DeleteParent(firebaseUID string) error {
	parent, err := s.ParentRepo.FindByFirebaseUID(firebaseUID)
	if err != nil {
		return models.ErrProfileNotFound
	}

	children, err := s.ChildRepo.FindByParentID(parent.ID)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := s.ChildRepo.Delete(child); err != nil {
			return err
		}
	}

	return s.ParentRepo.DeleteByFirebaseUID(firebaseUID)
}
