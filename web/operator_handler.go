package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	bk "github.com/govista/govista-web/booking"
	"github.com/govista/govista-web/govista"
)

type OperatorService interface {
	OperatorBookings(ctx context.Context) ([]bk.Booking, error)
	AcceptBooking(ctx context.Context, id string) (bk.Booking, error)
	RejectBooking(ctx context.Context, id string) (bk.Booking, error)
	RefundBooking(ctx context.Context, bookingID, reason string) error
}

// OperatorHandler serves the booking management view: stats cards,
// status filter, free-text search and the accept/reject/refund actions.
type OperatorHandler struct {
	service OperatorService
	flashes *Flashes
}

func NewOperatorHandler(service OperatorService, flashes *Flashes) *OperatorHandler {
	return &OperatorHandler{service: service, flashes: flashes}
}

func (h *OperatorHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.List)
	rg.POST("/bookings/:id/accept", h.Accept)
	rg.POST("/bookings/:id/reject", h.Reject)
	rg.POST("/bookings/:id/refund", h.Refund)
}

func (h *OperatorHandler) List(c *gin.Context) {
	sess, sessionID := currentSession(c)

	bookings, err := h.service.OperatorBookings(c.Request.Context())

	if err != nil {
		if sessionExpired(c, err) {
			return
		}
		c.Error(err)
		c.HTML(http.StatusOK, "operator_bookings.tmpl", gin.H{
			"Session": sess,
			"Error":   govista.UserMessage(err),
		})
		return
	}

	status := c.Query("status")
	search := c.Query("search")

	flash, _ := h.flashes.Pop(sessionID)

	// Stats always cover the full list; the filter only narrows the table.
	c.HTML(http.StatusOK, "operator_bookings.tmpl", gin.H{
		"Session":  sess,
		"Stats":    bk.ComputeStats(bookings),
		"Bookings": rows(bk.Filter(bookings, status, search)),
		"Status":   status,
		"Search":   search,
		"Flash":    flash,
	})
}

func (h *OperatorHandler) Accept(c *gin.Context) {
	h.review(c, bk.StatusAccepted)
}

func (h *OperatorHandler) Reject(c *gin.Context) {
	h.review(c, bk.StatusRejected)
}

func (h *OperatorHandler) review(c *gin.Context, status bk.Status) {
	_, sessionID := currentSession(c)
	id := c.Param("id")

	var err error

	if status == bk.StatusAccepted {
		_, err = h.service.AcceptBooking(c.Request.Context(), id)
	} else {
		_, err = h.service.RejectBooking(c.Request.Context(), id)
	}

	if err != nil {
		if sessionExpired(c, err) {
			return
		}
		c.Error(err)
		h.flashes.Error(sessionID, "Failed to update booking")
	} else {
		h.flashes.Success(sessionID, "Booking "+string(status)+" successfully")
	}

	c.Redirect(http.StatusFound, "/operator/bookings")
}

func (h *OperatorHandler) Refund(c *gin.Context) {
	_, sessionID := currentSession(c)

	err := h.service.RefundBooking(c.Request.Context(), c.Param("id"), c.PostForm("reason"))

	if err != nil {
		if sessionExpired(c, err) {
			return
		}
		c.Error(err)
		h.flashes.Error(sessionID, govista.UserMessage(err))
	} else {
		h.flashes.Success(sessionID, "Payment refunded successfully")
	}

	c.Redirect(http.StatusFound, "/operator/bookings")
}
