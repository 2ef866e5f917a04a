package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the possible states of a reservation
type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationSeated    ReservationStatus = "SEATED"
	ReservationCompleted ReservationStatus = "COMPLETED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationNoShow    ReservationStatus = "NO_SHOW"
)

// UnassignedTable marks a reservation without a table yet.
const UnassignedTable = -1

// Customer identifies the guest a reservation belongs to.
type Customer struct {
	ID    string
	Name  string
	Phone string
	Email string
}

func (c Customer) String() string {
	return fmt.Sprintf("Customer[%s: %s | %s]", c.ID, c.Name, c.Phone)
}

// Reservation is a booking for a party at a point in time. It starts
// confirmed with no table assigned.
type Reservation struct {
	ID            uuid.UUID
	Customer      Customer
	Time          time.Time
	PartySize     int
	AssignedTable int
	Status        ReservationStatus
}

// NewReservation creates a confirmed, unassigned reservation.
func NewReservation(customer Customer, at time.Time, partySize int) *Reservation {
	return &Reservation{
		ID:            uuid.New(),
		Customer:      customer,
		Time:          at,
		PartySize:     partySize,
		AssignedTable: UnassignedTable,
		Status:        ReservationConfirmed,
	}
}

// AssignTable seats the party at the given table.
func (r *Reservation) AssignTable(tableNumber int) {
	r.AssignedTable = tableNumber
	r.Status = ReservationSeated
}

// UpdateStatus moves the reservation to the given status.
func (r *Reservation) UpdateStatus(status ReservationStatus) {
	r.Status = status
}

// IsActive reports whether the reservation still occupies capacity.
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationConfirmed || r.Status == ReservationSeated
}

func (r *Reservation) String() string {
	table := "Unassigned"
	if r.AssignedTable > 0 {
		table = fmt.Sprintf("%d", r.AssignedTable)
	}
	return fmt.Sprintf("Reservation[%s | %s | Party=%d | Table=%s | Time=%s | Status=%s]",
		r.ID.String()[:8], r.Customer.Name, r.PartySize, table, r.Time.Format(time.RFC3339), r.Status)
}
