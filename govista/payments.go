package govista

import (
	"context"
	"net/http"

	bk "github.com/govista/govista-web/booking"
)

type intentEnvelope struct {
	Success         bool   `json:"success"`
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

type paymentEnvelope struct {
	Success bool       `json:"success"`
	Status  string     `json:"status"`
	Booking bk.Booking `json:"booking"`
}

type refundEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreatePaymentIntent starts a provider-side charge for a booking. A
// response without a client secret is a local error even when the
// transport succeeded.
func (c *Client) CreatePaymentIntent(ctx context.Context, bookingID string) (bk.PaymentIntent, error) {
	payload := map[string]string{"bookingId": bookingID}

	var envelope intentEnvelope

	if err := c.do(ctx, http.MethodPost, "/payments/create-intent", nil, payload, &envelope); err != nil {
		return bk.PaymentIntent{}, err
	}

	if envelope.ClientSecret == "" {
		return bk.PaymentIntent{}, ErrMissingClientSecret
	}

	return bk.PaymentIntent{ClientSecret: envelope.ClientSecret, IntentID: envelope.PaymentIntentID}, nil
}

// ConfirmPayment reports a provider-side success back to the API.
func (c *Client) ConfirmPayment(ctx context.Context, bookingID string) (bk.PaymentResult, error) {
	var envelope paymentEnvelope

	if err := c.do(ctx, http.MethodPost, "/payments/confirm/"+bookingID, nil, nil, &envelope); err != nil {
		return bk.PaymentResult{}, err
	}

	return bk.PaymentResult{Status: envelope.Status, Booking: envelope.Booking}, nil
}

// PaymentStatus fetches the current provider-side payment state.
func (c *Client) PaymentStatus(ctx context.Context, bookingID string) (bk.PaymentResult, error) {
	var envelope paymentEnvelope

	if err := c.do(ctx, http.MethodGet, "/payments/status/"+bookingID, nil, nil, &envelope); err != nil {
		return bk.PaymentResult{}, err
	}

	return bk.PaymentResult{Status: envelope.Status, Booking: envelope.Booking}, nil
}

// RefundPayment refunds a paid booking (operator action).
func (c *Client) RefundPayment(ctx context.Context, bookingID, reason string) error {
	payload := map[string]string{"bookingId": bookingID, "reason": reason}

	var envelope refundEnvelope

	if err := c.do(ctx, http.MethodPost, "/payments/refund", nil, payload, &envelope); err != nil {
		return err
	}

	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = "Refund failed"
		}
		return &APIError{StatusCode: http.StatusOK, Message: message}
	}

	return nil
}
