package records

import (
	"fmt"
	"sync"

	"photostudio/models"
)

// MemoryRecordRepo keeps confirmed bookings in memory, newest last.
type MemoryRecordRepo struct {
	mu       sync.RWMutex
	bookings []models.Booking
	byID     map[string]int
}

func NewMemoryRecordRepo() *MemoryRecordRepo {
	return &MemoryRecordRepo{byID: make(map[string]int)}
}

func (r *MemoryRecordRepo) Insert(booking models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[booking.ID]; exists {
		return fmt.Errorf("booking record already exists: %s", booking.ID)
	}
	r.byID[booking.ID] = len(r.bookings)
	r.bookings = append(r.bookings, booking)
	return nil
}

func (r *MemoryRecordRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("booking record not found: %s", id)
	}
	b := r.bookings[idx]
	return &b, nil
}

func (r *MemoryRecordRepo) GetByUser(userID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryRecordRepo) GetAll() ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}
