package cfg

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DefaultSearchURL  = "https://api.skypicker.com/flights"
	DefaultBookingURL = "http://37.139.6.125:8080/booking"
)

type PassengerConfig struct {
	FirstName  string `validate:"required"`
	LastName   string `validate:"required"`
	Title      string `validate:"required"`
	Birthday   string `validate:"required,datetime=2006-01-02"`
	Email      string `validate:"required,email"`
	DocumentID string `validate:"required"`
}

type SearchClientConfig struct {
	URL string `validate:"required,url"`
}

type BookingClientConfig struct {
	URL      string `validate:"required,url"`
	Currency string `validate:"len=3,uppercase"`
}

type ObservabilityConfig struct {
	// OTLPEndpoint is a gRPC collector address; empty disables telemetry.
	OTLPEndpoint string
	ServiceName  string `validate:"required"`
	Environment  string
}

type Config struct {
	AppEnv        string
	NodeID        int64         `validate:"gte=0,lte=1023"`
	HTTPTimeout   time.Duration `validate:"gt=0"`
	Search        SearchClientConfig
	Booking       BookingClientConfig
	Passenger     PassengerConfig
	Observability ObservabilityConfig
}

// Load reads an optional .env file and the environment. Unset variables fall
// back to defaults; every malformed value is reported at once.
func Load() (*Config, error) {
	var errs []error

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := envOr("APP_ENV", "production")

	timeoutSeconds := intEnvOr("HTTP_TIMEOUT_SECONDS", 30, &errs)
	nodeID := intEnvOr("NODE_ID", 1, &errs)

	config := &Config{
		AppEnv:      appEnv,
		NodeID:      int64(nodeID),
		HTTPTimeout: time.Duration(timeoutSeconds) * time.Second,
		Search: SearchClientConfig{
			URL: envOr("SEARCH_API_URL", DefaultSearchURL),
		},
		Booking: BookingClientConfig{
			URL:      envOr("BOOKING_API_URL", DefaultBookingURL),
			Currency: envOr("BOOKING_CURRENCY", "EUR"),
		},
		Passenger: PassengerConfig{
			FirstName:  envOr("PASSENGER_FIRST_NAME", "John"),
			LastName:   envOr("PASSENGER_LAST_NAME", "Doe"),
			Title:      envOr("PASSENGER_TITLE", "Mr"),
			Birthday:   envOr("PASSENGER_BIRTHDAY", "1900-01-01"),
			Email:      envOr("PASSENGER_EMAIL", "john.doe@example.com"),
			DocumentID: envOr("PASSENGER_DOCUMENT_ID", "4815162342"),
		},
		Observability: ObservabilityConfig{
			OTLPEndpoint: envOr("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName:  envOr("OTEL_SERVICE_NAME", "bookflight"),
			Environment:  appEnv,
		},
	}

	if err := validator.New().Struct(config); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return config, nil
}

func envOr(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	return value
}

func intEnvOr(key string, fallback int, errs *[]error) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return n
}
