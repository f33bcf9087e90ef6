package httpx

import (
	"context"
	"net/http"
	"net/url"
)

// Request is the unified request representation handed to the dispatcher.
// The core only consumes Path and the query parameters; the rest is carried
// for middleware (rate limiting, telemetry).
type Request struct {
	Ctx        context.Context
	Method     string
	Path       string
	RawQuery   string
	Header     http.Header
	RemoteAddr string
	// Raw holds the underlying transport-specific request object
	// (e.g. *http.Request or *fasthttp.RequestCtx) for escape hatches.
	Raw interface{}
}

// Query parses the raw query string. Malformed queries degrade to an empty
// set rather than an error; required-parameter checks happen downstream.
func (r *Request) Query() url.Values {
	q, err := url.ParseQuery(r.RawQuery)
	if err != nil {
		return url.Values{}
	}
	return q
}

// ResponseWriter is the small subset of http.ResponseWriter semantics that
// adapters must provide: set status, set headers, write bytes.
type ResponseWriter interface {
	Header() http.Header
	Write([]byte) (int, error)
	WriteHeader(status int)
}

// HandlerFunc is the application handler signature used across adapters.
type HandlerFunc func(w ResponseWriter, r *Request)
