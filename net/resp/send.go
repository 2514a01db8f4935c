package resp

import (
	"fmt"
	"net/http"
	"time"
)

// DefaultContentType is the content type set on envelope responses
// unless overridden or suppressed.
const DefaultContentType = "application/json; charset=utf-8"

type sendOptions struct {
	status       int
	contentType  string
	suppressType bool
	noCache      bool
	debug        bool
	abort        bool
}

func defaultSendOptions() sendOptions {
	return sendOptions{
		status:      http.StatusOK,
		contentType: DefaultContentType,
		abort:       true,
	}
}

// SendOption configures how an envelope is written to the client.
type SendOption func(*sendOptions)

// WithStatus sets the HTTP status code. The default is 200.
func WithStatus(status int) SendOption {
	return func(o *sendOptions) {
		o.status = status
	}
}

// WithContentType overrides the content type header value.
func WithContentType(contentType string) SendOption {
	return func(o *sendOptions) {
		o.contentType = contentType
	}
}

// WithoutContentType suppresses the content type header entirely.
func WithoutContentType() SendOption {
	return func(o *sendOptions) {
		o.suppressType = true
	}
}

// WithNoCache adds headers forcing immediate expiry and disabling
// client and proxy caching.
func WithNoCache() SendOption {
	return func(o *sendOptions) {
		o.noCache = true
	}
}

// WithDebug includes accumulated debug entries in the serialized body.
func WithDebug() SendOption {
	return func(o *sendOptions) {
		o.debug = true
	}
}

// WithoutAbort lets the gin handler chain continue after Write instead
// of aborting it.
func WithoutAbort() SendOption {
	return func(o *sendOptions) {
		o.abort = false
	}
}

// Send writes the envelope as the full response body. Headers are set
// before the body: the content type (unless suppressed), then the
// cache-avoidance headers when requested, then the status code. The
// envelope must be the only body producer for the request.
func Send(w http.ResponseWriter, e *Envelope, opts ...SendOption) error {
	o := defaultSendOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return send(w, e, o)
}

func send(w http.ResponseWriter, e *Envelope, o sendOptions) error {
	body, err := e.ToJSON(o.debug)
	if err != nil {
		return fmt.Errorf("failed to encode envelope: %w", err)
	}

	if !o.suppressType {
		w.Header().Set("Content-Type", o.contentType)
	}
	if o.noCache {
		setNoCacheHeaders(w.Header())
	}

	w.WriteHeader(o.status)
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write envelope: %w", err)
	}
	return nil
}

// setNoCacheHeaders forces immediate expiry and disables caching.
func setNoCacheHeaders(h http.Header) {
	h.Set("Expires", time.Unix(0, 0).UTC().Format(http.TimeFormat))
	h.Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	h.Set("Pragma", "no-cache")
}
