package govista

import (
	"context"
	"net/http"
	"net/url"

	bk "github.com/govista/govista-web/booking"
)

type toursEnvelope struct {
	Success bool      `json:"success"`
	Tours   []bk.Tour `json:"tours"`
}

type tourEnvelope struct {
	Success bool    `json:"success"`
	Tour    bk.Tour `json:"tour"`
}

// SearchTours lists tours matching the filter; empty filter fields are
// omitted from the query.
func (c *Client) SearchTours(ctx context.Context, filter bk.TourFilter) ([]bk.Tour, error) {
	query := url.Values{}

	if filter.Location != "" {
		query.Set("location", filter.Location)
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Date != "" {
		query.Set("date", filter.Date)
	}

	var envelope toursEnvelope

	if err := c.do(ctx, http.MethodGet, "/tours/search", query, nil, &envelope); err != nil {
		return nil, err
	}

	if !envelope.Success {
		return nil, ErrUnexpectedResponse
	}

	return envelope.Tours, nil
}

func (c *Client) Tour(ctx context.Context, id string) (bk.Tour, error) {
	var envelope tourEnvelope

	if err := c.do(ctx, http.MethodGet, "/tours/"+id, nil, nil, &envelope); err != nil {
		return bk.Tour{}, err
	}

	return envelope.Tour, nil
}
