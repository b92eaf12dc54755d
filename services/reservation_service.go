package services

import (
	"context"
	"errors"
	"regexp"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservations/models"
	"github.com/yeremiapane/restaurant-reservations/repositories"
	"github.com/yeremiapane/restaurant-reservations/utils"
)

var nonDigit = regexp.MustCompile(`\D`)

// ReservationService orchestrates reservation reads and writes against an
// injected store.
type ReservationService struct {
	store repositories.ReservationStore
}

func NewReservationService(store repositories.ReservationStore) *ReservationService {
	return &ReservationService{store: store}
}

func (s *ReservationService) List(ctx context.Context) ([]models.Reservation, error) {
	return s.store.ListAll(ctx)
}

func (s *ReservationService) ListByDate(ctx context.Context, date string) ([]models.Reservation, error) {
	return s.store.ListByDate(ctx, date)
}

// Search strips everything but digits from the query before matching, so a
// loosely formatted fragment like "555-1234" still finds "(555) 1234".
func (s *ReservationService) Search(ctx context.Context, mobileNumber string) ([]models.Reservation, error) {
	digits := nonDigit.ReplaceAllString(mobileNumber, "")
	return s.store.SearchByPhoneFragment(ctx, digits)
}

// Create persists a new reservation. An omitted status defaults to booked.
func (s *ReservationService) Create(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	if r.Status == "" {
		r.Status = models.StatusBooked
	}
	r.ID = 0
	return s.store.Insert(ctx, r)
}

func (s *ReservationService) Read(ctx context.Context, id uint) (models.Reservation, error) {
	r, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Reservation{}, utils.NewNotFoundError("Reservation not found: %d", id)
		}
		return models.Reservation{}, err
	}
	return r, nil
}

// UpdateFull replaces all client-owned fields of an existing reservation. The
// caller has already checked the transition is allowed; an empty status keeps
// the stored one, and the resulting status must be in the enum.
func (s *ReservationService) UpdateFull(ctx context.Context, id uint, r models.Reservation) (models.Reservation, error) {
	if r.Status == "" {
		existing, err := s.Read(ctx, id)
		if err != nil {
			return models.Reservation{}, err
		}
		r.Status = existing.Status
	}
	if !models.ValidStatus(r.Status) {
		return models.Reservation{}, utils.NewInvalidStatusError(r.Status)
	}
	return s.persist(ctx, id, r)
}

// ChangeStatus moves a reservation to the given status. The target is
// validated before anything is written, so an out-of-enum status never
// reaches the store.
func (s *ReservationService) ChangeStatus(ctx context.Context, id uint, status string) (models.Reservation, error) {
	if !models.ValidStatus(status) {
		return models.Reservation{}, utils.NewInvalidStatusError(status)
	}
	existing, err := s.Read(ctx, id)
	if err != nil {
		return models.Reservation{}, err
	}
	existing.Status = status
	return s.persist(ctx, id, existing)
}

func (s *ReservationService) persist(ctx context.Context, id uint, r models.Reservation) (models.Reservation, error) {
	updated, err := s.store.UpdateByID(ctx, id, r)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Reservation{}, utils.NewNotFoundError("Reservation not found: %d", id)
		}
		return models.Reservation{}, err
	}
	return updated, nil
}
