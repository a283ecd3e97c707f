package booking

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Actions is the set of UI actions currently permitted for a booking.
// The server stays authoritative for every transition; this only gates
// which affordances are offered.
type Actions struct {
	Cancel bool
	Pay    bool
	Review bool // operator accept/reject
}

func ActionsFor(b Booking) Actions {
	return Actions{
		Cancel: b.Status == StatusPending,
		Pay:    b.Status == StatusAccepted && b.PaymentStatus == PaymentUnpaid,
		Review: b.Status == StatusPending,
	}
}

// sameDay compares at day granularity, ignoring time-of-day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ValidateTravelDate rejects an unset date or a date before today,
// both compared at day granularity.
func ValidateTravelDate(date, now time.Time) error {
	if date.IsZero() {
		return ErrNoTravelDate
	}
	if truncateToDay(date).Before(truncateToDay(now)) {
		return ErrPastTravelDate
	}
	return nil
}

// HasActiveBooking reports whether the user already holds a pending or
// accepted booking for the same tour on the same calendar day.
func HasActiveBooking(existing []Booking, tourID string, date time.Time) bool {
	for _, b := range existing {
		if b.Tour.ID != tourID {
			continue
		}
		if !sameDay(b.TravelDate, date) {
			continue
		}
		if b.Status == StatusPending || b.Status == StatusAccepted {
			return true
		}
	}
	return false
}

// Stats are the operator dashboard aggregates.
type Stats struct {
	Total    int
	Pending  int
	Accepted int
	Revenue  decimal.Decimal
}

// ComputeStats counts bookings per status and sums revenue
// (price x participants) over accepted bookings.
func ComputeStats(bookings []Booking) Stats {
	stats := Stats{Total: len(bookings), Revenue: decimal.Zero}
	for _, b := range bookings {
		switch b.Status {
		case StatusPending:
			stats.Pending++
		case StatusAccepted:
			stats.Accepted++
			stats.Revenue = stats.Revenue.Add(b.Total())
		}
	}
	return stats
}

// Filter narrows a booking list by status and a case-insensitive search
// over tour title and customer name. Empty status or "all" matches
// every status; an empty query matches everything.
func Filter(bookings []Booking, status, query string) []Booking {
	query = strings.ToLower(strings.TrimSpace(query))
	filtered := []Booking{}

	for _, b := range bookings {
		if status != "" && status != "all" && string(b.Status) != status {
			continue
		}

		if query != "" {
			title := strings.ToLower(b.TourTitle())
			var name string
			if b.User.User != nil {
				name = strings.ToLower(b.User.User.FullName())
			}
			if !strings.Contains(title, query) && !strings.Contains(name, query) {
				continue
			}
		}

		filtered = append(filtered, b)
	}

	return filtered
}
