package flightclient

import (
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	RequestIDHeader = "X-Request-ID"

	// maxErrorBody caps how much of a rejected response is echoed back.
	maxErrorBody = 1 << 20
)

// Transport stamps every outbound request with the run's request ID and the
// active trace context.
type Transport struct {
	base      http.RoundTripper
	requestID string
}

func NewTransport(base http.RoundTripper, requestID string) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, requestID: requestID}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	if t.requestID != "" {
		r.Header.Set(RequestIDHeader, t.requestID)
	}
	otel.GetTextMapPropagator().Inject(r.Context(), propagation.HeaderCarrier(r.Header))
	return t.base.RoundTrip(r)
}

func readErrorBody(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return fmt.Sprintf("<failed to read response body: %v>", err)
	}
	return string(data)
}
