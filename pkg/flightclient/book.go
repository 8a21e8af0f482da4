package flightclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/slaho11/book-flight/internal/booking"
	"github.com/slaho11/book-flight/pkg/logger"
)

type BookingClient struct {
	httpClient *http.Client
	endpoint   string
	logger     logger.Client
}

func NewBookingClient(httpClient *http.Client, endpoint string, logger logger.Client) *BookingClient {
	return &BookingClient{
		httpClient: httpClient,
		endpoint:   endpoint,
		logger:     logger,
	}
}

func (c *BookingClient) BookFlight(ctx context.Context, bookingReq booking.BookingRequest) (*booking.Confirmation, error) {
	reqBody, err := json.Marshal(bookingReq)
	if err != nil {
		return nil, fmt.Errorf("booking: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("booking: failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("booking: external api call failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("booking response", logger.Field{Key: "status", Value: resp.StatusCode})

	// Only a plain 200 confirms the booking; 201/202 are not treated as success.
	if resp.StatusCode != http.StatusOK {
		return nil, &booking.StatusError{
			Op:         "booking",
			StatusCode: resp.StatusCode,
			Body:       readErrorBody(resp.Body),
		}
	}

	var confirmation booking.Confirmation
	if err := json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
		return nil, fmt.Errorf("booking: failed to decode json response: %w", err)
	}

	return &confirmation, nil
}
