package booking

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the booking lifecycle state as reported by the Govista API.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusAccepted, StatusRejected, StatusCancelled, StatusCompleted:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %q", s)
	}
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// PaymentStatus is the payment state of a booking.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return PaymentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown payment status: %q", s)
	}
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParsePaymentStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Tour is read-only reference data; the client never mutates tours.
type Tour struct {
	ID       string          `json:"_id"`
	Title    string          `json:"title"`
	Location string          `json:"location"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

type User struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

func (u User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return ""
	}
	return u.FirstName + " " + u.LastName
}

// TourRef is a tour reference that the API returns either populated
// (full tour object) or as a bare id string.
type TourRef struct {
	ID   string
	Tour *Tour
}

func (r *TourRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Tour = nil
		return nil
	}
	var tour Tour
	if err := json.Unmarshal(data, &tour); err != nil {
		return fmt.Errorf("tour reference is neither id nor object: %w", err)
	}
	r.ID = tour.ID
	r.Tour = &tour
	return nil
}

func (r TourRef) MarshalJSON() ([]byte, error) {
	if r.Tour != nil {
		return json.Marshal(r.Tour)
	}
	return json.Marshal(r.ID)
}

// UserRef mirrors TourRef for the booking's user field.
type UserRef struct {
	ID   string
	User *User
}

func (r *UserRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.User = nil
		return nil
	}
	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return fmt.Errorf("user reference is neither id nor object: %w", err)
	}
	r.ID = user.ID
	r.User = &user
	return nil
}

func (r UserRef) MarshalJSON() ([]byte, error) {
	if r.User != nil {
		return json.Marshal(r.User)
	}
	return json.Marshal(r.ID)
}

type Booking struct {
	ID            string        `json:"_id"`
	Tour          TourRef       `json:"tourId"`
	User          UserRef       `json:"userId"`
	TravelDate    time.Time     `json:"travelDate"`
	BookingDate   time.Time     `json:"bookingDate"`
	Participants  int           `json:"participants"`
	Status        Status        `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

// Total is price per person times participants, zero when the tour
// reference is not populated.
func (b Booking) Total() decimal.Decimal {
	if b.Tour.Tour == nil {
		return decimal.Zero
	}
	return b.Tour.Tour.Price.Mul(decimal.NewFromInt(int64(b.Participants)))
}

func (b Booking) TourTitle() string {
	if b.Tour.Tour == nil {
		return "Unknown Tour"
	}
	return b.Tour.Tour.Title
}
