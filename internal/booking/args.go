package booking

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
)

const (
	ProgramName = "bookflight"

	// DateLayout is the form --date is accepted in.
	DateLayout = "2006-01-02"

	usageLine = "usage: " + ProgramName + " --date YYYY-MM-DD --from CODE --to CODE" +
		" [--shortest | --cheapest] [--return N | --one-way] [--details]"
)

var validate = validator.New()

// Options is everything the command line asks for.
type Options struct {
	Query       SearchQuery
	ShowDetails bool
}

// Validate checks the field constraints and the trip type invariant.
func (q SearchQuery) Validate() error {
	if err := validate.Struct(q); err != nil {
		return err
	}
	if q.DepartureDate.IsZero() {
		return errors.New("departure date is required")
	}

	switch q.TripType {
	case TripRoundTrip:
		if q.ReturnAfterDays == nil {
			return errors.New("round trip requires the number of days in the destination")
		}
	case TripOneWay:
		if q.ReturnAfterDays != nil {
			return errors.New("one-way trip cannot have a return")
		}
	}
	return nil
}

// ParseArgs turns the command line into Options. On a usage error the usage
// line and the reason are written to output; -h/--help writes the full help
// and returns pflag.ErrHelp.
func ParseArgs(args []string, output io.Writer) (Options, error) {
	fs := pflag.NewFlagSet(ProgramName, pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(output, "%s\n\nFind and book the cheapest or shortest flight.\n\nFlags:\n", usageLine)
		fs.PrintDefaults()
	}

	date := fs.String("date", "", "departure date, format YYYY-MM-DD")
	from := fs.String("from", "", "IATA code of the departure airport, e.g. PRG, VIE, BUD")
	to := fs.String("to", "", "IATA code of the arrival airport, e.g. BKK, MIA, DPS")
	shortest := fs.Bool("shortest", false, "book the shortest flight; cannot be combined with --cheapest")
	cheapest := fs.Bool("cheapest", false, "book the cheapest flight (default); cannot be combined with --shortest")
	returnDays := fs.Int("return", 0, "book a return flight staying N days in the destination; cannot be combined with --one-way")
	oneWay := fs.Bool("one-way", false, "book a one-way flight (default); cannot be combined with --return")
	details := fs.Bool("details", false, "print the selected itinerary before booking")

	fail := func(err *UsageError) (Options, error) {
		fmt.Fprintf(output, "%s\n%s: error: %v\n", usageLine, ProgramName, err)
		return Options{}, err
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Options{}, err
		}
		return fail(&UsageError{Err: err})
	}

	if fs.NArg() > 0 {
		return fail(Usage("unrecognized arguments: %s", strings.Join(fs.Args(), " ")))
	}

	var missing []string
	for _, name := range []string{"date", "from", "to"} {
		if !fs.Changed(name) {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return fail(Usage("the following arguments are required: %s", strings.Join(missing, ", ")))
	}

	if *shortest && *cheapest {
		return fail(Usage("argument --shortest: not allowed with argument --cheapest"))
	}
	if fs.Changed("return") && *oneWay {
		return fail(Usage("argument --one-way: not allowed with argument --return"))
	}

	departure, err := time.Parse(DateLayout, *date)
	if err != nil {
		return fail(Usage("argument --date: invalid date %q, expected YYYY-MM-DD", *date))
	}

	query := SearchQuery{
		Origin:        strings.ToUpper(strings.TrimSpace(*from)),
		Destination:   strings.ToUpper(strings.TrimSpace(*to)),
		DepartureDate: departure,
		TripType:      TripOneWay,
		SortKey:       SortPrice,
	}

	if fs.Changed("return") {
		if *returnDays < 0 {
			return fail(Usage("argument --return: days in destination must not be negative, got %d", *returnDays))
		}
		days := *returnDays
		query.TripType = TripRoundTrip
		query.ReturnAfterDays = &days
	}

	if *shortest {
		query.SortKey = SortDuration
	}

	if err := query.Validate(); err != nil {
		return fail(Usage("invalid search: %v", err))
	}

	return Options{Query: query, ShowDetails: *details}, nil
}
