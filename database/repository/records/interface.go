package records

import "photostudio/models"

// RecordRepository stores confirmed booking records for dashboard and admin
// reads. Append-only.
type RecordRepository interface {
	Insert(booking models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByUser(userID string) ([]models.Booking, error)
	GetAll() ([]models.Booking, error)
}
