package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	UserID         uint          `json:"user_id" gorm:"not null"`
	PractitionerID uint          `json:"practitioner_id" gorm:"not null"`
	BookingDate    time.Time     `json:"booking_date"`
	Status         BookingStatus `json:"status"`
	Notes          string        `json:"notes"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// BeforeCreate assigns the server-side defaults: bookings always start
// pending and the booking date is stamped on creation.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = BookingPending
	}
	if b.BookingDate.IsZero() {
		b.BookingDate = time.Now()
	}
	return nil
}
