package booking

import (
	"fmt"
	"io"
	"strconv"
)

// PrintItinerary writes every leg, the total duration and the price.
func PrintItinerary(w io.Writer, itinerary Itinerary, currency string) {
	for _, leg := range itinerary.Route {
		fmt.Fprintf(w, "\t%s (%s) --> %s (%s) \t\n",
			leg.OriginCity, leg.OriginCode, leg.DestinationCity, leg.DestinationCode)
	}

	fmt.Fprintf(w, "\n\tFlight Duration: %s\n", FormatDuration(itinerary.TotalDurationSeconds))
	fmt.Fprintf(w, "\tPrice: %s %s\n\n", strconv.FormatFloat(itinerary.Price, 'f', -1, 64), currency)
}

// FormatDuration renders seconds as h:mm, prefixed with whole days when the
// trip takes longer than a day ("1 day, 2:05").
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := seconds / 60
	days := minutes / (24 * 60)
	hours := (minutes / 60) % 24
	mins := minutes % 60

	clock := fmt.Sprintf("%d:%02d", hours, mins)
	switch {
	case days == 1:
		return "1 day, " + clock
	case days > 1:
		return fmt.Sprintf("%d days, %s", days, clock)
	}
	return clock
}
