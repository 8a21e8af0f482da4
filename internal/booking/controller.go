package booking

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/slaho11/book-flight/pkg/logger"
)

const noFlightsMessage = "No flights have been found. Please change dates and/or check correctness of IATA airports codes."

// Controller drives one booking run: search, pick the first itinerary, book
// it and report. Everything meant for the operator is written to out.
type Controller struct {
	service *Service
	out     io.Writer
	logger  logger.Client
}

func NewController(service *Service, out io.Writer, logger logger.Client) *Controller {
	return &Controller{
		service: service,
		out:     out,
		logger:  logger,
	}
}

// Run executes the flow and returns the process exit code.
func (c *Controller) Run(ctx context.Context, opts Options) int {
	result, err := c.service.Search(ctx, opts.Query)
	if errors.Is(err, ErrNoFlights) {
		fmt.Fprintln(c.out, noFlightsMessage)
		return ExitOK
	}
	if err != nil {
		c.reportFailure("searching for flights", err)
		return ExitFailure
	}

	itinerary, err := SelectItinerary(result)
	if err != nil {
		c.reportFailure("searching for flights", err)
		return ExitFailure
	}
	c.logger.Debug("selected itinerary",
		logger.Field{Key: "booking_token", Value: itinerary.BookingToken},
		logger.Field{Key: "duration_s", Value: itinerary.TotalDurationSeconds},
	)

	if opts.ShowDetails {
		PrintItinerary(c.out, itinerary, result.Currency)
	}

	confirmation, err := c.service.Book(ctx, itinerary)
	if err != nil {
		c.reportFailure("booking the flight", err)
		return ExitFailure
	}

	fmt.Fprintf(c.out, "PNR: %s\n", confirmation.PNR)
	return ExitOK
}

func (c *Controller) reportFailure(action string, err error) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		fmt.Fprintf(c.out, "Something went wrong while %s. Server has returned code %d.\n", action, statusErr.StatusCode)
		fmt.Fprintln(c.out, statusErr.Body)
		return
	}
	fmt.Fprintf(c.out, "Something went wrong while %s: %v\n", action, err)
}
