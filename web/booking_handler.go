package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	bk "github.com/govista/govista-web/booking"
	"github.com/govista/govista-web/govista"
	"github.com/shopspring/decimal"
)

type BookingService interface {
	MyBookings(ctx context.Context) ([]bk.Booking, error)
	FindBooking(ctx context.Context, id string) (bk.Booking, error)
	FindTour(ctx context.Context, id string) (bk.Tour, error)
	CreateBooking(ctx context.Context, req bk.CreateRequest) (bk.Booking, error)
	CancelBooking(ctx context.Context, id string) (bk.Booking, error)
	Pay(ctx context.Context, b bk.Booking) (bk.PayResult, error)
	StartPayment(ctx context.Context, b bk.Booking) (bk.PaymentIntent, error)
	CompletePayment(ctx context.Context, bookingID string) (bk.PaymentResult, error)
	CheckPayment(ctx context.Context, bookingID string) (bk.PaymentResult, error)
}

type BookingHandler struct {
	service   BookingService
	flashes   *Flashes
	stripeKey string
}

func NewBookingHandler(service BookingService, flashes *Flashes, stripeKey string) *BookingHandler {
	return &BookingHandler{service: service, flashes: flashes, stripeKey: stripeKey}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/create", h.CreateForm)
	rg.POST("/create", h.Create)
	rg.GET("/:id", h.Detail)
	rg.POST("/:id/cancel", h.Cancel)
	rg.POST("/:id/pay", h.Pay)
	rg.GET("/:id/payment", h.PaymentPage)
	rg.POST("/:id/payment/complete", h.PaymentComplete)
}

// sessionExpired handles the global 401 side effect: the token store is
// already cleared by the client, so drop the cookie and go to login.
func sessionExpired(c *gin.Context, err error) bool {
	if !errors.Is(err, govista.ErrSessionExpired) {
		return false
	}

	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, loginPath)
	c.Abort()

	return true
}

// userMessage maps workflow sentinels to their fixed user-facing texts
// and falls back to the normalized API message.
func userMessage(err error) string {
	switch {
	case errors.Is(err, bk.ErrNoTravelDate):
		return "Please select a date before booking"
	case errors.Is(err, bk.ErrPastTravelDate):
		return "Past dates are not allowed"
	case errors.Is(err, bk.ErrDuplicateBooking):
		return "You have already booked this tour on this date."
	case errors.Is(err, bk.ErrNotAccepted):
		return "Booking must be accepted before payment."
	case errors.Is(err, bk.ErrAlreadyPaid):
		return "Payment already completed."
	case errors.Is(err, bk.ErrPaymentFailed):
		return "Payment failed. Please try again."
	default:
		return govista.UserMessage(err)
	}
}

// bookingRow pairs a booking with its permitted actions for rendering.
type bookingRow struct {
	Booking bk.Booking
	Actions bk.Actions
}

func rows(bookings []bk.Booking) []bookingRow {
	result := make([]bookingRow, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, bookingRow{Booking: b, Actions: bk.ActionsFor(b)})
	}
	return result
}

func (h *BookingHandler) List(c *gin.Context) {
	sess, sessionID := currentSession(c)

	bookings, err := h.service.MyBookings(c.Request.Context())

	if err != nil {
		if sessionExpired(c, err) {
			return
		}
		c.Error(err)
		c.HTML(http.StatusOK, "bookings.tmpl", gin.H{
			"Session": sess,
			"Error":   govista.UserMessage(err),
		})
		return
	}

	flash, _ := h.flashes.Pop(sessionID)

	c.HTML(http.StatusOK, "bookings.tmpl", gin.H{
		"Session":  sess,
		"Bookings": rows(bookings),
		"Flash":    flash,
	})
}

func (h *BookingHandler) Detail(c *gin.Context) {
	sess, sessionID := currentSession(c)

	b, err := h.service.FindBooking(c.Request.Context(), c.Param("id"))

	if err != nil {
		if sessionExpired(c, err) {
			return
		}
		c.Error(err)
		c.HTML(http.StatusNotFound, "booking_detail.tmpl", gin.H{
			"Session": sess,
			"Error":   govista.UserMessage(err),
		})
		return
	}

	flash, _ := h.flashes.Pop(sessionID)

	c.HTML(http.StatusOK, "booking_detail.tmpl", gin.H{
		"Session": sess,
		"Booking": b,
		"Actions": bk.ActionsFor(b),
		"Flash":   flash,
	})
}

// CreateForm shows the booking confirmation page for a tour, a date and
// a party size picked on the tour page. The duplicate guard runs here
// already so the submit button can be disabled up front.
func (h *BookingHandler) CreateForm(c *gin.Context) {
	sess, _ := currentSession(c)

	tour, err := h.service.FindTour(c.Request.Context(), c.Query("tourId"))

	if err != nil {
		if sessionExpired(c, err) {
			return
		}
		c.Error(err)
		c.HTML(http.StatusNotFound, "booking_create.tmpl", gin.H{
			"Session": sess,
			"Error":   "Tour not found",
		})
		return
	}

	date := c.Query("date")
	people := participants(c.Query("people"))

	alreadyBooked := false

	if travelDate, parseErr := time.Parse("2006-01-02", date); parseErr == nil {
		if existing, listErr := h.service.MyBookings(c.Request.Context()); listErr == nil {
			alreadyBooked = bk.HasActiveBooking(existing, tour.ID, travelDate)
		}
	}

	c.HTML(http.StatusOK, "booking_create.tmpl", gin.H{
		"Session":       sess,
		"Tour":          tour,
		"Date":          date,
		"People":        people,
		"Total":         tour.Price.Mul(decimalFromInt(people)),
		"AlreadyBooked": alreadyBooked,
	})
}

func (h *BookingHandler) Create(c *gin.Context) {
	sess, sessionID := currentSession(c)

	tourID := c.PostForm("tourId")
	people := participants(c.PostForm("people"))

	var travelDate time.Time

	if raw := c.PostForm("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)

		if err != nil {
			c.HTML(http.StatusBadRequest, "booking_create.tmpl", gin.H{
				"Session": sess,
				"Error":   "Please select a date before booking",
			})
			return
		}

		travelDate = parsed
	}

	created, err := h.service.CreateBooking(c.Request.Context(), bk.CreateRequest{
		TourID:       tourID,
		TravelDate:   travelDate,
		Participants: people,
	})

	if err != nil {
		if sessionExpired(c, err) {
			return
		}
		c.Error(err)

		tour, tourErr := h.service.FindTour(c.Request.Context(), tourID)

		data := gin.H{
			"Session": sess,
			"Date":    c.PostForm("date"),
			"People":  people,
			"Error":   userMessage(err),
		}

		if tourErr == nil {
			data["Tour"] = tour
			data["Total"] = tour.Price.Mul(decimalFromInt(people))
		}

		c.HTML(http.StatusBadRequest, "booking_create.tmpl", data)
		return
	}

	h.flashes.Success(sessionID, "Booking request sent! Waiting for operator approval.")
	c.Redirect(http.StatusFound, "/user/bookings/"+created.ID)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	_, sessionID := currentSession(c)
	id := c.Param("id")

	if _, err := h.service.CancelBooking(c.Request.Context(), id); err != nil {
		if sessionExpired(c, err) {
			return
		}
		c.Error(err)
		h.flashes.Error(sessionID, userMessage(err))
	} else {
		h.flashes.Success(sessionID, "Booking has been cancelled successfully.")
	}

	c.Redirect(http.StatusFound, "/user/bookings/"+id)
}

// Pay runs the one-click payment. Guarded no-op outcomes (already paid,
// not yet accepted) come back from the workflow without a network call.
func (h *BookingHandler) Pay(c *gin.Context) {
	_, sessionID := currentSession(c)
	id := c.Param("id")

	b, err := h.service.FindBooking(c.Request.Context(), id)

	if err != nil {
		if sessionExpired(c, err) {
			return
		}
		c.Error(err)
		h.flashes.Error(sessionID, govista.UserMessage(err))
		c.Redirect(http.StatusFound, "/user/bookings/"+id)
		return
	}

	result, err := h.service.Pay(c.Request.Context(), b)

	if err != nil {
		if sessionExpired(c, err) {
			return
		}
		c.Error(err)
		h.flashes.Error(sessionID, userMessage(err))
	} else {
		h.flashes.Success(sessionID, result.Message)
	}

	c.Redirect(http.StatusFound, "/user/bookings/"+id)
}

// PaymentPage starts a provider charge and hands the client secret and
// publishable key to the card form.
func (h *BookingHandler) PaymentPage(c *gin.Context) {
	sess, _ := currentSession(c)
	id := c.Param("id")

	b, err := h.service.FindBooking(c.Request.Context(), id)

	if err != nil {
		if sessionExpired(c, err) {
			return
		}
		c.Error(err)
		c.HTML(http.StatusNotFound, "payment.tmpl", gin.H{
			"Session": sess,
			"Error":   govista.UserMessage(err),
		})
		return
	}

	intent, err := h.service.StartPayment(c.Request.Context(), b)

	if err != nil {
		if sessionExpired(c, err) {
			return
		}
		c.Error(err)
		c.HTML(http.StatusBadRequest, "payment.tmpl", gin.H{
			"Session": sess,
			"Booking": b,
			"Error":   userMessage(err),
		})
		return
	}

	c.HTML(http.StatusOK, "payment.tmpl", gin.H{
		"Session":      sess,
		"Booking":      b,
		"StripeKey":    h.stripeKey,
		"ClientSecret": intent.ClientSecret,
	})
}

func (h *BookingHandler) PaymentComplete(c *gin.Context) {
	_, sessionID := currentSession(c)
	id := c.Param("id")

	result, err := h.service.CompletePayment(c.Request.Context(), id)

	if err != nil {
		if sessionExpired(c, err) {
			return
		}
		c.Error(err)

		// The card charge may have landed even when the confirm call
		// failed. Check the recorded status before reporting an error.
		if status, checkErr := h.service.CheckPayment(c.Request.Context(), id); checkErr == nil &&
			status.Booking.PaymentStatus == bk.PaymentPaid {
			h.flashes.Success(sessionID, "Payment successful!")
		} else {
			h.flashes.Error(sessionID, govista.UserMessage(err))
		}

		c.Redirect(http.StatusFound, "/user/bookings/"+id)
		return
	}

	if result.Booking.PaymentStatus == bk.PaymentPaid {
		h.flashes.Success(sessionID, "Payment successful!")
	} else {
		h.flashes.Error(sessionID, "Payment failed. Please try again.")
	}

	c.Redirect(http.StatusFound, "/user/bookings/"+id)
}

func participants(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
