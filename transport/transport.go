// transport/transport.go
/* Responsible for surfacing deprecation warnings transparently in an HTTP
client's request flow. The Transport wraps any http.RoundTripper, inspects
each response for deprecation metadata, and logs a structured warning when the
server has marked the endpoint as deprecated. Responses pass through
unmodified; deprecation is never turned into an error. */
package transport

import (
	"net/http"
	"sync"
	"time"

	"github.com/deploymenttheory/go-http-deprecation/deprecation"
	"github.com/deploymenttheory/go-http-deprecation/logger"
	"github.com/google/uuid"
)

// depEvent identifies deprecation warnings in log output.
const depEvent = "deprecated_response"

// Transport is an http.RoundTripper that logs a warning whenever a response
// carries a Deprecation header. Safe for concurrent use by multiple
// goroutines, as required of RoundTrippers.
type Transport struct {
	base http.RoundTripper
	log  logger.Logger

	warnOnce    bool
	warnedMutex sync.Mutex
	warned      map[string]bool // endpoints already warned about, keyed by method and URL
}

// Option configures a Transport.
type Option func(*Transport)

// WithLogger sets the logger used for deprecation warnings. Without it the
// transport stays silent.
func WithLogger(log logger.Logger) Option {
	return func(t *Transport) {
		t.log = log
	}
}

// WithWarnOnce limits warnings to one per endpoint (method + URL), so a
// deprecated endpoint polled in a loop does not flood the logs.
func WithWarnOnce() Option {
	return func(t *Transport) {
		t.warnOnce = true
	}
}

// New creates a deprecation-aware Transport around base. A nil base falls
// back to http.DefaultTransport.
func New(base http.RoundTripper, opts ...Option) *Transport {
	t := &Transport{
		base:   base,
		log:    logger.NewNopLogger(),
		warned: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Wrap installs a deprecation-aware Transport on an existing http.Client,
// preserving whatever transport the client already uses.
func Wrap(client *http.Client, opts ...Option) {
	client.Transport = New(client.Transport, opts...)
}

// RoundTrip executes the request on the base transport and inspects the
// response headers for deprecation metadata. Transport errors are returned
// untouched.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return resp, err
	}

	if d := deprecation.FromResponse(resp); d != nil {
		t.warn(req, d)
	}
	return resp, nil
}

// warn emits the structured deprecation warning, respecting the warn-once
// gate when configured.
func (t *Transport) warn(req *http.Request, d *deprecation.Deprecation) {
	endpoint := req.Method + " " + req.URL.String()

	if t.warnOnce {
		t.warnedMutex.Lock()
		seen := t.warned[endpoint]
		t.warned[endpoint] = true
		t.warnedMutex.Unlock()
		if seen {
			return
		}
	}

	var timestamp string
	if d.Timestamp != nil {
		timestamp = d.Timestamp.Format(time.RFC3339)
	}

	t.log.LogDeprecation(depEvent, uuid.New().String(), req.Method, req.URL.String(), timestamp, d.Link)
}
