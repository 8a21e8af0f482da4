package flightclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/slaho11/book-flight/internal/booking"
	"github.com/slaho11/book-flight/pkg/logger"
)

// upstreamDateLayout is the day/month/year form the search API expects.
const upstreamDateLayout = "02/01/2006"

type SearchClient struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Client
}

func NewSearchClient(httpClient *http.Client, baseURL string, logger logger.Client) *SearchClient {
	return &SearchClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

type searchResponse struct {
	Results  int            `json:"_results"`
	Currency string         `json:"currency"`
	Data     []searchFlight `json:"data"`
}

type searchFlight struct {
	BookingToken string         `json:"booking_token"`
	Route        []searchLeg    `json:"route"`
	Duration     searchDuration `json:"duration"`
	Price        float64        `json:"price"`
}

type searchLeg struct {
	CityFrom string `json:"cityFrom"`
	FlyFrom  string `json:"flyFrom"`
	CityTo   string `json:"cityTo"`
	FlyTo    string `json:"flyTo"`
}

type searchDuration struct {
	Total int64 `json:"total"`
}

// SearchParams builds the query string for a search. Parameters the query
// leaves unset are omitted rather than sent empty.
func SearchParams(q booking.SearchQuery) url.Values {
	params := url.Values{}
	params.Set("flyFrom", q.Origin)
	params.Set("to", q.Destination)

	date := q.DepartureDate.Format(upstreamDateLayout)
	params.Set("dateFrom", date)
	params.Set("dateTo", date)

	if q.ReturnAfterDays != nil {
		days := strconv.Itoa(*q.ReturnAfterDays)
		params.Set("daysInDestinationFrom", days)
		params.Set("daysInDestinationTo", days)
	}

	params.Set("typeFlight", string(q.TripType))
	params.Set("sort", string(q.SortKey))
	return params
}

func (c *SearchClient) SearchFlights(ctx context.Context, q booking.SearchQuery) (*booking.FlightResult, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("search: invalid endpoint %q: %w", c.baseURL, err)
	}
	query := endpoint.Query()
	for key, values := range SearchParams(q) {
		query[key] = values
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("search: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("search request", logger.Field{Key: "url", Value: endpoint.String()})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search: external api call failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("search response", logger.Field{Key: "status", Value: resp.StatusCode})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &booking.StatusError{
			Op:         "search",
			StatusCode: resp.StatusCode,
			Body:       readErrorBody(resp.Body),
		}
	}

	var apiResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("search: failed to decode json response: %w", err)
	}

	return mapSearchResponse(&apiResp), nil
}

func mapSearchResponse(resp *searchResponse) *booking.FlightResult {
	itineraries := make([]booking.Itinerary, 0, len(resp.Data))

	for _, f := range resp.Data {
		route := make([]booking.Leg, 0, len(f.Route))
		for _, leg := range f.Route {
			route = append(route, booking.Leg{
				OriginCity:      leg.CityFrom,
				OriginCode:      leg.FlyFrom,
				DestinationCity: leg.CityTo,
				DestinationCode: leg.FlyTo,
			})
		}

		itineraries = append(itineraries, booking.Itinerary{
			BookingToken:         f.BookingToken,
			Route:                route,
			TotalDurationSeconds: f.Duration.Total,
			Price:                f.Price,
		})
	}

	return &booking.FlightResult{
		ResultCount: resp.Results,
		Currency:    resp.Currency,
		Itineraries: itineraries,
	}
}
