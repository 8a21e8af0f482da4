package booking

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0:00"},
		{59, "0:00"},
		{3300, "0:55"},
		{9000, "2:30"},
		{86400 + 3900, "1 day, 1:05"},
		{3*86400 + 600, "3 days, 0:10"},
		{-5, "0:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestPrintItinerary(t *testing.T) {
	buf := &bytes.Buffer{}

	PrintItinerary(buf, Itinerary{
		Route: []Leg{
			{OriginCity: "Prague", OriginCode: "PRG", DestinationCity: "Frankfurt", DestinationCode: "FRA"},
			{OriginCity: "Frankfurt", OriginCode: "FRA", DestinationCity: "Bangkok", DestinationCode: "BKK"},
		},
		TotalDurationSeconds: 61200,
		Price:                412.5,
	}, "EUR")

	want := "\tPrague (PRG) --> Frankfurt (FRA) \t\n" +
		"\tFrankfurt (FRA) --> Bangkok (BKK) \t\n" +
		"\n\tFlight Duration: 17:00\n" +
		"\tPrice: 412.5 EUR\n\n"
	assert.Equal(t, want, buf.String())
}
