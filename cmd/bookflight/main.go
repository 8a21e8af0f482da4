// Command bookflight searches for a flight on the Skypicker API, books the
// first (cheapest or shortest) result and prints the PNR.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/slaho11/book-flight/cfg"
	"github.com/slaho11/book-flight/internal/booking"
	"github.com/slaho11/book-flight/pkg/flightclient"
	"github.com/slaho11/book-flight/pkg/idgen"
	"github.com/slaho11/book-flight/pkg/logger"
	"github.com/slaho11/book-flight/pkg/telemetry"

	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := booking.ParseArgs(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return booking.ExitOK
	}
	if err != nil {
		return exitCode(err)
	}

	// ============
	// config
	// ============
	config, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return booking.ExitFailure
	}

	// ============
	// logger
	// ============
	ids, err := idgen.NewSnowflakeGenerator(config.NodeID)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return booking.ExitFailure
	}
	runID := ids.NextRunID()
	zlogger := logger.NewWithWriter(config.AppEnv, stderr).
		With(logger.Field{Key: "run_id", Value: runID.String()})

	// ============
	// Otel
	// ============
	shutdownOtel, err := telemetry.Setup(ctx, config.Observability, zlogger)
	if err != nil {
		zlogger.Warn("continuing without telemetry", logger.Field{Key: "err", Value: err})
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownOtel(shutdownCtx); err != nil {
				zlogger.Warn("telemetry shutdown failed", logger.Field{Key: "err", Value: err})
			}
		}()
	}

	// ============
	// External Service
	// ============
	httpClient := &http.Client{
		Timeout:   config.HTTPTimeout,
		Transport: flightclient.NewTransport(http.DefaultTransport, runID.String()),
	}
	searchClient := flightclient.NewSearchClient(httpClient, config.Search.URL, zlogger)
	bookingClient := flightclient.NewBookingClient(httpClient, config.Booking.URL, zlogger)

	// ============
	// Internal Service
	// ============
	bookingSvc := booking.NewService(searchClient, bookingClient, passenger(config.Passenger), config.Booking.Currency, zlogger)
	controller := booking.NewController(bookingSvc, stdout, zlogger)

	return controller.Run(ctx, opts)
}

func passenger(p cfg.PassengerConfig) booking.Passenger {
	return booking.Passenger{
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Title:      p.Title,
		Birthday:   p.Birthday,
		Email:      p.Email,
		DocumentID: p.DocumentID,
	}
}

func exitCode(err error) int {
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return booking.ExitFailure
}
