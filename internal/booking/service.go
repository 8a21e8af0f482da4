package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/slaho11/book-flight/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/slaho11/book-flight/internal/booking"

type Searcher interface {
	SearchFlights(ctx context.Context, query SearchQuery) (*FlightResult, error)
}

type Booker interface {
	BookFlight(ctx context.Context, req BookingRequest) (*Confirmation, error)
}

type Service struct {
	searcher  Searcher
	booker    Booker
	passenger Passenger
	currency  string
	logger    logger.Client

	tracer   trace.Tracer
	searches metric.Int64Counter
	bookings metric.Int64Counter
}

func NewService(searcher Searcher, booker Booker, passenger Passenger, currency string, logger logger.Client) *Service {
	meter := otel.Meter(instrumentationName)
	searches, err := meter.Int64Counter("bookflight.searches",
		metric.WithDescription("Flight searches by outcome"))
	if err != nil {
		logger.Warn("search counter unavailable", logFieldErr(err))
		searches = noop.Int64Counter{}
	}
	bookings, err := meter.Int64Counter("bookflight.bookings",
		metric.WithDescription("Booking submissions by outcome"))
	if err != nil {
		logger.Warn("booking counter unavailable", logFieldErr(err))
		bookings = noop.Int64Counter{}
	}

	return &Service{
		searcher:  searcher,
		booker:    booker,
		passenger: passenger,
		currency:  currency,
		logger:    logger,
		tracer:    otel.Tracer(instrumentationName),
		searches:  searches,
		bookings:  bookings,
	}
}

// Search runs the flight search. A result with no flights is returned
// together with ErrNoFlights.
func (s *Service) Search(ctx context.Context, query SearchQuery) (*FlightResult, error) {
	ctx, span := s.tracer.Start(ctx, "booking.Search", trace.WithAttributes(
		attribute.String("flight.origin", query.Origin),
		attribute.String("flight.destination", query.Destination),
		attribute.String("flight.trip_type", string(query.TripType)),
		attribute.String("flight.sort", string(query.SortKey)),
	))
	defer span.End()

	s.logger.Info("searching flights",
		logger.Field{Key: "from", Value: query.Origin},
		logger.Field{Key: "to", Value: query.Destination},
		logger.Field{Key: "date", Value: query.DepartureDate.Format(DateLayout)},
		logger.Field{Key: "trip_type", Value: string(query.TripType)},
		logger.Field{Key: "sort", Value: string(query.SortKey)},
	)

	result, err := s.searcher.SearchFlights(ctx, query)
	if err != nil {
		s.record(ctx, s.searches, "failed")
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		s.logger.Error("flight search failed", logFieldErr(err))
		return nil, err
	}

	span.SetAttributes(attribute.Int("flight.results", result.ResultCount))
	s.logger.Debug("flight search finished",
		logger.Field{Key: "results", Value: result.ResultCount},
		logger.Field{Key: "currency", Value: result.Currency},
	)

	if result.ResultCount == 0 {
		s.record(ctx, s.searches, "empty")
		return result, ErrNoFlights
	}

	s.record(ctx, s.searches, "found")
	return result, nil
}

// SelectItinerary returns the first itinerary. The upstream sort is trusted;
// no client-side comparison is made.
func SelectItinerary(result *FlightResult) (Itinerary, error) {
	if result == nil || result.ResultCount == 0 {
		return Itinerary{}, ErrNoFlights
	}
	if len(result.Itineraries) == 0 {
		return Itinerary{}, fmt.Errorf("search: response reports %d results but carries no itineraries", result.ResultCount)
	}
	return result.Itineraries[0], nil
}

// NewBookingRequest binds the configured passenger to an itinerary.
func (s *Service) NewBookingRequest(itinerary Itinerary) BookingRequest {
	return BookingRequest{
		Passengers:   []Passenger{s.passenger},
		Currency:     s.currency,
		BookingToken: itinerary.BookingToken,
	}
}

func (s *Service) Book(ctx context.Context, itinerary Itinerary) (*Confirmation, error) {
	ctx, span := s.tracer.Start(ctx, "booking.Book")
	defer span.End()

	if itinerary.BookingToken == "" {
		err := errors.New("booking: itinerary has no booking token")
		span.RecordError(err)
		span.SetStatus(codes.Error, "missing booking token")
		return nil, err
	}

	req := s.NewBookingRequest(itinerary)
	s.logger.Info("booking itinerary",
		logger.Field{Key: "currency", Value: req.Currency},
		logger.Field{Key: "price", Value: itinerary.Price},
		logger.Field{Key: "legs", Value: len(itinerary.Route)},
	)

	confirmation, err := s.booker.BookFlight(ctx, req)
	if err != nil {
		s.record(ctx, s.bookings, "failed")
		span.RecordError(err)
		span.SetStatus(codes.Error, "booking failed")
		s.logger.Error("booking failed", logFieldErr(err))
		return nil, err
	}

	s.record(ctx, s.bookings, "confirmed")
	s.logger.Info("booking confirmed", logger.Field{Key: "pnr", Value: confirmation.PNR})
	return confirmation, nil
}

func (s *Service) record(ctx context.Context, counter metric.Int64Counter, outcome string) {
	counter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func logFieldErr(err error) logger.Field {
	return logger.Field{Key: "err", Value: err}
}
