package models

import (
	"math"
	"time"
)

const (
	StatusBooked    = "booked"
	StatusSeated    = "seated"
	StatusFinished  = "finished"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the four reservation statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusBooked, StatusSeated, StatusFinished, StatusCancelled:
		return true
	}
	return false
}

type Reservation struct {
	ID              uint      `gorm:"primaryKey;column:reservation_id" json:"reservation_id"`
	FirstName       string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName        string    `gorm:"type:varchar(100);not null" json:"last_name"`
	MobileNumber    string    `gorm:"type:varchar(30);not null" json:"mobile_number"`
	People          int       `gorm:"not null" json:"people"`
	ReservationDate string    `gorm:"type:varchar(10);not null;index" json:"reservation_date"`
	ReservationTime string    `gorm:"type:varchar(8);not null" json:"reservation_time"`
	Status          string    `gorm:"type:varchar(20);not null;default:'booked'" json:"status"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

func (Reservation) TableName() string {
	return "reservations"
}

// ReservationPayload is the inbound shape of a reservation under the request
// body's "data" key. People is a float64 so a non-integer JSON number survives
// decoding and can be rejected with the proper message instead of a bind error.
type ReservationPayload struct {
	ReservationID   uint    `json:"reservation_id,omitempty"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	MobileNumber    string  `json:"mobile_number"`
	People          float64 `json:"people"`
	ReservationDate string  `json:"reservation_date"`
	ReservationTime string  `json:"reservation_time"`
	Status          string  `json:"status"`
}

// ToModel converts a validated payload into the persisted form.
func (p ReservationPayload) ToModel() Reservation {
	return Reservation{
		ID:              p.ReservationID,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		MobileNumber:    p.MobileNumber,
		People:          int(math.Trunc(p.People)),
		ReservationDate: p.ReservationDate,
		ReservationTime: p.ReservationTime,
		Status:          p.Status,
	}
}
