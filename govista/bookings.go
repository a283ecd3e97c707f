package govista

import (
	"context"
	"fmt"
	"net/http"
	"time"

	bk "github.com/govista/govista-web/booking"
)

type bookingsEnvelope struct {
	Bookings []bk.Booking `json:"bookings"`
}

type bookingEnvelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Booking bk.Booking `json:"booking"`
}

// MyBookings lists the bookings of the signed-in user.
func (c *Client) MyBookings(ctx context.Context) ([]bk.Booking, error) {
	var envelope bookingsEnvelope

	if err := c.do(ctx, http.MethodGet, "/bookings/my-bookings", nil, nil, &envelope); err != nil {
		return nil, err
	}

	return envelope.Bookings, nil
}

// OperatorBookings lists every booking visible to the operator token.
func (c *Client) OperatorBookings(ctx context.Context) ([]bk.Booking, error) {
	var envelope bookingsEnvelope

	if err := c.do(ctx, http.MethodGet, "/bookings/operator", nil, nil, &envelope); err != nil {
		return nil, err
	}

	return envelope.Bookings, nil
}

func (c *Client) Booking(ctx context.Context, id string) (bk.Booking, error) {
	var envelope bookingEnvelope

	if err := c.do(ctx, http.MethodGet, "/bookings/"+id, nil, nil, &envelope); err != nil {
		return bk.Booking{}, err
	}

	return envelope.Booking, nil
}

func (c *Client) CreateBooking(ctx context.Context, req bk.CreateRequest) (bk.Booking, error) {
	payload := map[string]any{
		"tourId":       req.TourID,
		"travelDate":   req.TravelDate.Format(time.RFC3339),
		"participants": req.Participants,
	}

	var envelope bookingEnvelope

	if err := c.do(ctx, http.MethodPost, "/bookings", nil, payload, &envelope); err != nil {
		return bk.Booking{}, err
	}

	if envelope.Booking.ID == "" {
		return bk.Booking{}, fmt.Errorf("%w: created booking carried no id", ErrUnexpectedResponse)
	}

	return envelope.Booking, nil
}

func (c *Client) CancelBooking(ctx context.Context, id string) (bk.Booking, error) {
	var envelope bookingEnvelope

	if err := c.do(ctx, http.MethodPut, "/bookings/"+id+"/cancel", nil, nil, &envelope); err != nil {
		return bk.Booking{}, err
	}

	return envelope.Booking, nil
}

// UpdateBookingStatus transitions a booking to accepted or rejected
// (operator action).
func (c *Client) UpdateBookingStatus(ctx context.Context, id string, status bk.Status) (bk.Booking, error) {
	payload := map[string]string{"status": string(status)}

	var envelope bookingEnvelope

	if err := c.do(ctx, http.MethodPut, "/bookings/"+id+"/status", nil, payload, &envelope); err != nil {
		return bk.Booking{}, err
	}

	return envelope.Booking, nil
}

// ConfirmBookingPayment marks a booking as paid in one call. A
// transport-level success with success=false is still a failure and
// surfaces the server's message.
func (c *Client) ConfirmBookingPayment(ctx context.Context, id string) (bk.Booking, error) {
	var envelope bookingEnvelope

	if err := c.do(ctx, http.MethodPut, "/bookings/"+id+"/confirm-payment", nil, nil, &envelope); err != nil {
		return bk.Booking{}, err
	}

	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = "Payment failed"
		}
		return bk.Booking{}, &APIError{StatusCode: http.StatusOK, Message: message}
	}

	return envelope.Booking, nil
}
