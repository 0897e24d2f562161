package user

import "photostudio/models"

// UserRepository manages portal user records.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id string) error
	GetAll() ([]models.User, error)
}
