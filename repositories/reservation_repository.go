package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservations/models"
)

// ReservationStore is the persistence contract for reservations. The store
// assigns identifiers and timestamps on insert.
type ReservationStore interface {
	Insert(ctx context.Context, r models.Reservation) (models.Reservation, error)
	FindByID(ctx context.Context, id uint) (models.Reservation, error)
	UpdateByID(ctx context.Context, id uint, r models.Reservation) (models.Reservation, error)
	ListAll(ctx context.Context) ([]models.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]models.Reservation, error)
	SearchByPhoneFragment(ctx context.Context, digits string) ([]models.Reservation, error)
}

type GormReservationStore struct {
	db *gorm.DB
}

func NewGormReservationStore(db *gorm.DB) *GormReservationStore {
	return &GormReservationStore{db: db}
}

func (s *GormReservationStore) Insert(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return models.Reservation{}, err
	}
	return r, nil
}

func (s *GormReservationStore) FindByID(ctx context.Context, id uint) (models.Reservation, error) {
	var r models.Reservation
	if err := s.db.WithContext(ctx).First(&r, id).Error; err != nil {
		return models.Reservation{}, err
	}
	return r, nil
}

// UpdateByID writes all client-owned fields of the record and reloads the row
// so store-managed timestamps come back fresh.
func (s *GormReservationStore) UpdateByID(ctx context.Context, id uint, r models.Reservation) (models.Reservation, error) {
	var existing models.Reservation
	if err := s.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return models.Reservation{}, err
	}

	updates := map[string]interface{}{
		"first_name":       r.FirstName,
		"last_name":        r.LastName,
		"mobile_number":    r.MobileNumber,
		"people":           r.People,
		"reservation_date": r.ReservationDate,
		"reservation_time": r.ReservationTime,
		"status":           r.Status,
	}
	if err := s.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return models.Reservation{}, err
	}

	var updated models.Reservation
	if err := s.db.WithContext(ctx).First(&updated, id).Error; err != nil {
		return models.Reservation{}, err
	}
	return updated, nil
}

func (s *GormReservationStore) ListAll(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.WithContext(ctx).
		Order("reservation_date asc").
		Order("reservation_time asc").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListByDate returns the active reservations of a single day; finished and
// cancelled parties no longer occupy a slot.
func (s *GormReservationStore) ListByDate(ctx context.Context, date string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.WithContext(ctx).
		Where("reservation_date = ?", date).
		Where("status NOT IN ?", []string{models.StatusFinished, models.StatusCancelled}).
		Order("reservation_time asc").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// SearchByPhoneFragment matches stored numbers after stripping the common
// separators, so "(555) 1234" is found by "5551234". Nested REPLACE keeps the
// expression portable across MySQL and SQLite.
func (s *GormReservationStore) SearchByPhoneFragment(ctx context.Context, digits string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.WithContext(ctx).
		Where(
			"REPLACE(REPLACE(REPLACE(REPLACE(mobile_number, '(', ''), ')', ''), '-', ''), ' ', '') LIKE ?",
			"%"+digits+"%",
		).
		Order("reservation_date asc").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}
