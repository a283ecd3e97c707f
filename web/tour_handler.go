package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	bk "github.com/govista/govista-web/booking"
	"github.com/govista/govista-web/govista"
)

type TourService interface {
	SearchTours(ctx context.Context, filter bk.TourFilter) ([]bk.Tour, error)
	FindTour(ctx context.Context, id string) (bk.Tour, error)
}

type TourHandler struct {
	service TourService
}

func NewTourHandler(service TourService) *TourHandler {
	return &TourHandler{service: service}
}

func (h *TourHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Detail)
}

// List renders the tour search page; filters come straight from the
// query string and are re-applied server-side by the API.
func (h *TourHandler) List(c *gin.Context) {
	filter := bk.TourFilter{
		Location: c.Query("location"),
		Category: c.Query("category"),
		Date:     c.Query("date"),
	}

	sess, _ := currentSession(c)

	tours, err := h.service.SearchTours(c.Request.Context(), filter)

	if err != nil {
		if sessionExpired(c, err) {
			return
		}
		c.Error(err)
		c.HTML(http.StatusOK, "tours.tmpl", gin.H{
			"Session": sess,
			"Filter":  filter,
			"Error":   "Failed to load tours.",
		})
		return
	}

	c.HTML(http.StatusOK, "tours.tmpl", gin.H{
		"Session": sess,
		"Filter":  filter,
		"Tours":   tours,
	})
}

func (h *TourHandler) Detail(c *gin.Context) {
	sess, _ := currentSession(c)

	tour, err := h.service.FindTour(c.Request.Context(), c.Param("id"))

	if err != nil {
		if sessionExpired(c, err) {
			return
		}
		c.Error(err)
		c.HTML(http.StatusNotFound, "tour_detail.tmpl", gin.H{
			"Session": sess,
			"Error":   govista.UserMessage(err),
		})
		return
	}

	c.HTML(http.StatusOK, "tour_detail.tmpl", gin.H{
		"Session": sess,
		"Tour":    tour,
	})
}
