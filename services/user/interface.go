package user

import "photostudio/models"

// AuthResponse contains the user's ID, token, and profile details.
type AuthResponse struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
}

// UserService manages portal accounts and authentication.
type UserService interface {
	RegisterUser(user models.User) (*AuthResponse, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(user models.User) (*models.User, error)
	DeleteUser(id string) error
	RevokeAuthToken(id string) error
	GetAllUsers() ([]models.User, error)
}
