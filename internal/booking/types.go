package booking

import "time"

type TripType string

const (
	TripOneWay    TripType = "oneway"
	TripRoundTrip TripType = "round"
)

type SortKey string

const (
	SortPrice    SortKey = "price"
	SortDuration SortKey = "duration"
)

// SearchQuery is the normalized form of the command line. ReturnAfterDays is
// set exactly when TripType is TripRoundTrip.
type SearchQuery struct {
	Origin          string `validate:"required"`
	Destination     string `validate:"required"`
	DepartureDate   time.Time
	ReturnAfterDays *int     `validate:"omitempty,gte=0"`
	TripType        TripType `validate:"oneof=oneway round"`
	SortKey         SortKey  `validate:"oneof=price duration"`
}

type FlightResult struct {
	ResultCount int
	Currency    string
	Itineraries []Itinerary
}

type Itinerary struct {
	BookingToken         string
	Route                []Leg
	TotalDurationSeconds int64
	Price                float64
}

type Leg struct {
	OriginCity      string
	OriginCode      string
	DestinationCity string
	DestinationCode string
}

type Passenger struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Title      string `json:"title"`
	Birthday   string `json:"birthday"`
	Email      string `json:"email"`
	DocumentID string `json:"documentID"`
}

type BookingRequest struct {
	Passengers   []Passenger `json:"passengers"`
	Currency     string      `json:"currency"`
	BookingToken string      `json:"booking_token"`
}

type Confirmation struct {
	PNR string `json:"pnr"`
}
