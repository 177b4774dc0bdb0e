package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a booking. Only CONFIRMED
// is ever produced by creation; the other states exist for data imported from
// the admin side.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

var (
	ErrInvalidSlot = errors.New("time slot is not offered")
	ErrInvalidDate = errors.New("scheduled date must be in YYYY-MM-DD format")
)

// Booking is a confirmed consultation request. Immutable after creation.
type Booking struct {
	ID               string        `json:"id" bson:"_id"`
	BookingReference string        `json:"booking_reference" bson:"booking_reference"`
	ClientName       string        `json:"client_name" bson:"client_name"`
	ClientEmail      string        `json:"client_email" bson:"client_email"`
	ClientPhone      string        `json:"client_phone,omitempty" bson:"client_phone,omitempty"`
	ServiceType      string        `json:"service_type" bson:"service_type"`
	ScheduledDate    string        `json:"scheduled_date" bson:"scheduled_date"`
	TimeSlot         string        `json:"time_slot" bson:"time_slot"`
	Status           BookingStatus `json:"status" bson:"status"`
	CreatedAt        time.Time     `json:"created_at" bson:"created_at"`
}

// Astrologer is the fixed public profile of the consulting astrologer.
type Astrologer struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Expertise          []string `json:"expertise"`
	Experience         string   `json:"experience"`
	ConsultationFee    int      `json:"consultation_fee"`
	Currency           string   `json:"currency"`
	Bio                string   `json:"bio"`
	Rating             float64  `json:"rating"`
	TotalConsultations int      `json:"total_consultations"`
}
