package booking

import (
	"context"
	"io"
	"time"

	"github.com/slaho11/book-flight/pkg/logger"

	"github.com/stretchr/testify/mock"
)

// MockSearcher is a mock implementation of the Searcher interface
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) SearchFlights(ctx context.Context, query SearchQuery) (*FlightResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*FlightResult), args.Error(1)
}

// MockBooker is a mock implementation of the Booker interface
type MockBooker struct {
	mock.Mock
}

func (m *MockBooker) BookFlight(ctx context.Context, req BookingRequest) (*Confirmation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Confirmation), args.Error(1)
}

var testPassenger = Passenger{
	FirstName:  "John",
	LastName:   "Doe",
	Title:      "Mr",
	Birthday:   "1900-01-01",
	Email:      "john.doe@example.com",
	DocumentID: "4815162342",
}

func testQuery() SearchQuery {
	return SearchQuery{
		Origin:        "PRG",
		Destination:   "VIE",
		DepartureDate: time.Date(2017, time.August, 1, 0, 0, 0, 0, time.UTC),
		TripType:      TripOneWay,
		SortKey:       SortPrice,
	}
}

func testResult() *FlightResult {
	return &FlightResult{
		ResultCount: 2,
		Currency:    "EUR",
		Itineraries: []Itinerary{
			{
				BookingToken: "token-first",
				Route: []Leg{
					{OriginCity: "Prague", OriginCode: "PRG", DestinationCity: "Vienna", DestinationCode: "VIE"},
				},
				TotalDurationSeconds: 3300,
				Price:                19,
			},
			{
				// Cheaper than the first on purpose: the upstream order wins.
				BookingToken:         "token-second",
				TotalDurationSeconds: 9000,
				Price:                12,
			},
		},
	}
}

func newTestService(searcher *MockSearcher, booker *MockBooker) *Service {
	return NewService(searcher, booker, testPassenger, "EUR", logger.NewWithWriter("production", io.Discard))
}
