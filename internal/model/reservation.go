package model

import "time"

// ReservationStatus tracks where a reservation sits in the triage flow.
// Transitions are caller-driven; the store does not enforce a state machine.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "Pending"
	ReservationConfirmed ReservationStatus = "Confirmed"
	ReservationCompleted ReservationStatus = "Completed"
	ReservationCancelled ReservationStatus = "Cancelled"
)

// Valid reports whether s is a known reservation status.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}

// Reservation represents a table booking request. Date and Time are kept as
// the form strings the guest submitted.
type Reservation struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Guests    int               `json:"guests"`
	Status    ReservationStatus `json:"status"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// ReservationRequest represents the public booking form payload.
type ReservationRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
	Notes  string `json:"notes,omitempty"`
}
