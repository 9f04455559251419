package models

import "strconv"

// Reservation is a booked table as returned by the backend. The customer is
// embedded on admin listings and absent on the create response. TimeSlot is
// "YYYY-MM-DD HH:MM" or ISO-8601; TableNumber is assigned by the backend.
type Reservation struct {
	ID          ID        `json:"id"`
	CustomerID  *ID       `json:"customer_id,omitempty"`
	Customer    *Customer `json:"customer,omitempty"`
	TimeSlot    string    `json:"time_slot"`
	PartySize   *int      `json:"party_size,omitempty"`
	TableNumber *int      `json:"table_number,omitempty"`
	CreatedAt   *string   `json:"created_at,omitempty"`
}

// PartySizeText returns the party size or the placeholder
func (r Reservation) PartySizeText() string {
	if r.PartySize == nil {
		return Placeholder
	}
	return strconv.Itoa(*r.PartySize)
}

// TableText returns the table number or the placeholder
func (r Reservation) TableText() string {
	if r.TableNumber == nil {
		return Placeholder
	}
	return strconv.Itoa(*r.TableNumber)
}

// CreatedAtValue returns the raw created_at token, empty when absent
func (r Reservation) CreatedAtValue() string {
	if r.CreatedAt == nil {
		return ""
	}
	return *r.CreatedAt
}

// ReservationRequest is the request body for POST /reservations
type ReservationRequest struct {
	TimeSlot  string `json:"time_slot"`
	PartySize int    `json:"party_size"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ReservationResponse is the body returned by POST /reservations
type ReservationResponse struct {
	Status      string       `json:"status"`
	Reservation *Reservation `json:"reservation"`
}

// Summary holds the counts returned by GET /admin/summary
type Summary struct {
	Customers    int `json:"customers"`
	Reservations int `json:"reservations"`
}
