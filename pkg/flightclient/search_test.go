package flightclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/slaho11/book-flight/internal/booking"
	"github.com/slaho11/book-flight/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchFixture = `{
	"_results": 2,
	"currency": "EUR",
	"data": [
		{
			"booking_token": "tok-1",
			"price": 25,
			"duration": {"total": 3300, "departure": 3300, "return": 0},
			"route": [
				{"cityFrom": "Prague", "flyFrom": "PRG", "cityTo": "Vienna", "flyTo": "VIE", "flight_no": 1234}
			]
		},
		{
			"booking_token": "tok-2",
			"price": 31.5,
			"duration": {"total": 7200},
			"route": []
		}
	]
}`

func testLogger() logger.Client {
	return logger.NewWithWriter("production", io.Discard)
}

func queryFor(t *testing.T, days *int, sortKey booking.SortKey) booking.SearchQuery {
	t.Helper()
	trip := booking.TripOneWay
	if days != nil {
		trip = booking.TripRoundTrip
	}
	return booking.SearchQuery{
		Origin:          "PRG",
		Destination:     "VIE",
		DepartureDate:   time.Date(2017, time.August, 1, 0, 0, 0, 0, time.UTC),
		ReturnAfterDays: days,
		TripType:        trip,
		SortKey:         sortKey,
	}
}

func TestSearchParams_OneWayCheapest(t *testing.T) {
	params := SearchParams(queryFor(t, nil, booking.SortPrice))

	assert.Equal(t, url.Values{
		"flyFrom":    {"PRG"},
		"to":         {"VIE"},
		"dateFrom":   {"01/08/2017"},
		"dateTo":     {"01/08/2017"},
		"typeFlight": {"oneway"},
		"sort":       {"price"},
	}, params)
}

func TestSearchParams_ReturnShortest(t *testing.T) {
	seven := 7
	params := SearchParams(queryFor(t, &seven, booking.SortDuration))

	assert.Equal(t, "round", params.Get("typeFlight"))
	assert.Equal(t, "7", params.Get("daysInDestinationFrom"))
	assert.Equal(t, "7", params.Get("daysInDestinationTo"))
	assert.Equal(t, "duration", params.Get("sort"))
}

func TestSearchClient_SearchFlights(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/flights", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, searchFixture)
	}))
	defer server.Close()

	client := NewSearchClient(server.Client(), server.URL+"/flights", testLogger())
	result, err := client.SearchFlights(context.Background(), queryFor(t, nil, booking.SortPrice))
	require.NoError(t, err)

	assert.Equal(t, "oneway", gotQuery.Get("typeFlight"))
	assert.False(t, gotQuery.Has("daysInDestinationFrom"))

	assert.Equal(t, 2, result.ResultCount)
	assert.Equal(t, "EUR", result.Currency)
	require.Len(t, result.Itineraries, 2)

	first := result.Itineraries[0]
	assert.Equal(t, "tok-1", first.BookingToken)
	assert.Equal(t, int64(3300), first.TotalDurationSeconds)
	assert.Equal(t, 25.0, first.Price)
	assert.Equal(t, []booking.Leg{
		{OriginCity: "Prague", OriginCode: "PRG", DestinationCity: "Vienna", DestinationCode: "VIE"},
	}, first.Route)
	assert.Equal(t, 31.5, result.Itineraries[1].Price)
}

func TestSearchClient_KeepsEndpointQuery(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		io.WriteString(w, `{"_results": 0, "currency": "EUR", "data": []}`)
	}))
	defer server.Close()

	client := NewSearchClient(server.Client(), server.URL+"/flights?partner=picky", testLogger())
	result, err := client.SearchFlights(context.Background(), queryFor(t, nil, booking.SortPrice))
	require.NoError(t, err)

	assert.Equal(t, 0, result.ResultCount)
	assert.Equal(t, "PRG", gotQuery.Get("flyFrom"))
	assert.Equal(t, "picky", gotQuery.Get("partner"))
}

func TestSearchClient_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"message": "dateFrom is invalid"}`)
	}))
	defer server.Close()

	client := NewSearchClient(server.Client(), server.URL, testLogger())
	_, err := client.SearchFlights(context.Background(), queryFor(t, nil, booking.SortPrice))

	var statusErr *booking.StatusError
	require.True(t, errors.As(err, &statusErr), "expected StatusError, got %v", err)
	assert.Equal(t, "search", statusErr.Op)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, `{"message": "dateFrom is invalid"}`, statusErr.Body)
}

func TestSearchClient_Accepts2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		io.WriteString(w, searchFixture)
	}))
	defer server.Close()

	client := NewSearchClient(server.Client(), server.URL, testLogger())
	result, err := client.SearchFlights(context.Background(), queryFor(t, nil, booking.SortPrice))
	require.NoError(t, err)
	assert.Equal(t, 2, result.ResultCount)
}

func TestSearchClient_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html>maintenance</html>`)
	}))
	defer server.Close()

	client := NewSearchClient(server.Client(), server.URL, testLogger())
	_, err := client.SearchFlights(context.Background(), queryFor(t, nil, booking.SortPrice))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search: failed to decode json response")
}

func TestSearchClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	client := NewSearchClient(&http.Client{}, endpoint, testLogger())
	_, err := client.SearchFlights(context.Background(), queryFor(t, nil, booking.SortPrice))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search: external api call failed")
}
