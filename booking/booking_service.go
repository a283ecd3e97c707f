package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// TourFilter holds the tour search parameters; empty fields are omitted
// from the query.
type TourFilter struct {
	Location string
	Category string
	Date     string
}

type CreateRequest struct {
	TourID       string
	TravelDate   time.Time
	Participants int
}

// PaymentIntent is the payment-provider handle returned by the API when
// a charge is started.
type PaymentIntent struct {
	ClientSecret string
	IntentID     string
}

// PaymentResult is the outcome of confirming or checking a payment.
type PaymentResult struct {
	Status  string
	Booking Booking
}

//go:generate mockgen -source=booking_service.go -destination=mocks/api_mock.go -package=mocks

// API is the remote booking surface the service drives. Implemented by
// the govista client.
type API interface {
	SearchTours(ctx context.Context, filter TourFilter) ([]Tour, error)
	Tour(ctx context.Context, id string) (Tour, error)
	MyBookings(ctx context.Context) ([]Booking, error)
	OperatorBookings(ctx context.Context) ([]Booking, error)
	Booking(ctx context.Context, id string) (Booking, error)
	CreateBooking(ctx context.Context, req CreateRequest) (Booking, error)
	CancelBooking(ctx context.Context, id string) (Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status Status) (Booking, error)
	ConfirmBookingPayment(ctx context.Context, id string) (Booking, error)
	CreatePaymentIntent(ctx context.Context, bookingID string) (PaymentIntent, error)
	ConfirmPayment(ctx context.Context, bookingID string) (PaymentResult, error)
	PaymentStatus(ctx context.Context, bookingID string) (PaymentResult, error)
	RefundPayment(ctx context.Context, bookingID, reason string) error
}

type Service struct {
	api API
	log *slog.Logger
	now func() time.Time
}

func NewService(api API, log *slog.Logger) *Service {
	return &Service{api: api, log: log.With("component", "booking"), now: time.Now}
}

func (s *Service) SearchTours(ctx context.Context, filter TourFilter) ([]Tour, error) {
	return s.api.SearchTours(ctx, filter)
}

func (s *Service) FindTour(ctx context.Context, id string) (Tour, error) {
	return s.api.Tour(ctx, id)
}

func (s *Service) FindBooking(ctx context.Context, id string) (Booking, error) {
	return s.api.Booking(ctx, id)
}

// MyBookings lists the signed-in user's bookings with every tour
// reference resolved.
func (s *Service) MyBookings(ctx context.Context) ([]Booking, error) {
	bookings, err := s.api.MyBookings(ctx)

	if err != nil {
		return nil, err
	}

	s.resolveTours(ctx, bookings)

	return bookings, nil
}

// OperatorBookings lists every booking visible to the operator with
// tour references resolved.
func (s *Service) OperatorBookings(ctx context.Context) ([]Booking, error) {
	bookings, err := s.api.OperatorBookings(ctx)

	if err != nil {
		return nil, err
	}

	s.resolveTours(ctx, bookings)

	return bookings, nil
}

// CreateBooking validates the travel date and checks for a duplicate
// active booking before any create request is sent.
func (s *Service) CreateBooking(ctx context.Context, req CreateRequest) (Booking, error) {
	if err := ValidateTravelDate(req.TravelDate, s.now()); err != nil {
		return Booking{}, err
	}

	existing, err := s.api.MyBookings(ctx)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to check existing bookings: %w", err)
	}

	if HasActiveBooking(existing, req.TourID, req.TravelDate) {
		return Booking{}, ErrDuplicateBooking
	}

	return s.api.CreateBooking(ctx, req)
}

// CancelBooking cancels a pending booking. Any other state is refused
// locally before a request is made.
func (s *Service) CancelBooking(ctx context.Context, id string) (Booking, error) {
	b, err := s.api.Booking(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if b.Status != StatusPending {
		return Booking{}, ErrInvalidBookingState
	}

	return s.api.CancelBooking(ctx, id)
}

// AcceptBooking transitions a pending booking to accepted (operator).
func (s *Service) AcceptBooking(ctx context.Context, id string) (Booking, error) {
	return s.review(ctx, id, StatusAccepted)
}

// RejectBooking transitions a pending booking to rejected (operator).
func (s *Service) RejectBooking(ctx context.Context, id string) (Booking, error) {
	return s.review(ctx, id, StatusRejected)
}

func (s *Service) review(ctx context.Context, id string, status Status) (Booking, error) {
	b, err := s.api.Booking(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if b.Status != StatusPending {
		return Booking{}, ErrInvalidBookingState
	}

	return s.api.UpdateBookingStatus(ctx, id, status)
}

// PayResult carries the booking after a pay action plus the message to
// show the user.
type PayResult struct {
	Booking Booking
	Message string
}

// Pay runs the one-click payment. An already paid booking resolves
// immediately to a success message and a booking that is not accepted
// resolves immediately to a validation error; neither makes a network
// call.
func (s *Service) Pay(ctx context.Context, b Booking) (PayResult, error) {
	if b.PaymentStatus == PaymentPaid {
		return PayResult{Booking: b, Message: "Payment already completed."}, nil
	}

	if b.Status != StatusAccepted {
		return PayResult{}, ErrNotAccepted
	}

	updated, err := s.api.ConfirmBookingPayment(ctx, b.ID)

	if err != nil {
		return PayResult{}, err
	}

	if updated.PaymentStatus != PaymentPaid {
		return PayResult{}, ErrPaymentFailed
	}

	return PayResult{Booking: updated, Message: "Payment successful!"}, nil
}

// StartPayment creates a payment intent for an accepted, unpaid
// booking. The same guards as Pay apply before the network call.
func (s *Service) StartPayment(ctx context.Context, b Booking) (PaymentIntent, error) {
	if b.PaymentStatus == PaymentPaid {
		return PaymentIntent{}, ErrAlreadyPaid
	}

	if b.Status != StatusAccepted {
		return PaymentIntent{}, ErrNotAccepted
	}

	return s.api.CreatePaymentIntent(ctx, b.ID)
}

// CompletePayment confirms a provider-side payment and returns the
// refreshed booking.
func (s *Service) CompletePayment(ctx context.Context, bookingID string) (PaymentResult, error) {
	return s.api.ConfirmPayment(ctx, bookingID)
}

// CheckPayment asks the API for the current provider-side payment state.
func (s *Service) CheckPayment(ctx context.Context, bookingID string) (PaymentResult, error) {
	return s.api.PaymentStatus(ctx, bookingID)
}

// RefundBooking refunds a paid booking (operator).
func (s *Service) RefundBooking(ctx context.Context, bookingID, reason string) error {
	b, err := s.api.Booking(ctx, bookingID)

	if err != nil {
		return err
	}

	if b.PaymentStatus != PaymentPaid {
		return ErrInvalidBookingState
	}

	return s.api.RefundPayment(ctx, bookingID, reason)
}

const resolveConcurrency = 8

// resolveTours fetches unpopulated tour references concurrently and
// joins before returning. A failed lookup leaves the reference
// unpopulated rather than failing the whole list.
func (s *Service) resolveTours(ctx context.Context, bookings []Booking) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)

	for i := range bookings {
		if bookings[i].Tour.Tour != nil || bookings[i].Tour.ID == "" {
			continue
		}

		g.Go(func() error {
			tour, err := s.api.Tour(ctx, bookings[i].Tour.ID)

			if err != nil {
				s.log.Warn("failed to resolve tour", "tourId", bookings[i].Tour.ID, "err", err)
				return nil
			}

			bookings[i].Tour.Tour = &tour

			return nil
		})
	}

	_ = g.Wait()
}
