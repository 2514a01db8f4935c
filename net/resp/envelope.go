package resp

import (
	"sort"
	"strconv"

	"github.com/lightspeed-go/respkit/i18n"
)

// Envelope accumulates the outcome of one request: success or error
// state, per-field validation errors, payload fields, debug entries,
// and an optional redirect target. A fresh envelope reports success
// with no messages. One envelope serves one in-flight request and must
// not be shared across requests.
type Envelope struct {
	success        bool
	successMessage string
	errorMessage   string
	fieldErrors    map[string]string
	data           *orderedMap
	debug          *orderedMap
	redirectURL    string
	resolver       i18n.Resolver
}

// Option configures an envelope at construction time.
type Option func(*Envelope)

// WithResolver sets the message resolver used by MarkSuccess and
// MarkError. The default resolver returns keys unchanged.
func WithResolver(r i18n.Resolver) Option {
	return func(e *Envelope) {
		if r != nil {
			e.resolver = r
		}
	}
}

// NewEnvelope creates an empty envelope in the success state.
func NewEnvelope(opts ...Option) *Envelope {
	e := &Envelope{
		success:     true,
		fieldErrors: make(map[string]string),
		data:        newOrderedMap(),
		debug:       newOrderedMap(),
		resolver:    i18n.Passthrough(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// SetField inserts or overwrites one payload field.
func (e *Envelope) SetField(name string, value any) {
	e.data.set(name, value)
}

// Populate replaces the entire payload with the given map, discarding
// prior payload fields. Success, error, debug, and redirect state is
// untouched. Keys are emitted in sorted order.
func (e *Envelope) Populate(data map[string]any) {
	e.data = newOrderedMap()
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e.data.set(k, data[k])
	}
}

// ResetData clears the payload, leaving all other state untouched.
func (e *Envelope) ResetData() {
	e.data = newOrderedMap()
}

// MarkSuccess puts the envelope in the success state and clears any
// error message. A non-empty message is resolved and stored as the
// success message, overwriting any prior one.
func (e *Envelope) MarkSuccess(message string) {
	if message != "" {
		e.successMessage = e.resolver.Resolve(message)
	}
	e.success = true
	e.errorMessage = ""
}

// MarkError puts the envelope in the error state and clears any
// success message. A non-empty message is resolved and stored as the
// error message. Field errors are merged into the accumulated set,
// with new values winning per key.
func (e *Envelope) MarkError(message string, fieldErrors map[string]string) {
	if message != "" {
		e.errorMessage = e.resolver.Resolve(message)
	}
	for field, msg := range fieldErrors {
		e.fieldErrors[field] = msg
	}
	e.success = false
	e.successMessage = ""
}

// AddDebug attaches a diagnostic value. When no title is given one is
// synthesized as "Debug #N", N counting entries from 1 at insertion
// time. A colliding title overwrites the earlier entry.
func (e *Envelope) AddDebug(value any, title ...string) {
	key := ""
	if len(title) > 0 {
		key = title[0]
	}
	if key == "" {
		key = "Debug #" + strconv.Itoa(e.debug.len()+1)
	}
	e.debug.set(key, value)
}

// Redirect requests a client-side redirect to the given URL. The last
// call wins.
func (e *Envelope) Redirect(url string) {
	e.redirectURL = url
}

// Field returns the payload value at name, or nil when absent. A nil
// result is indistinguishable from a stored nil; use HasField to tell
// them apart.
func (e *Envelope) Field(name string) any {
	v, _ := e.data.get(name)
	return v
}

// HasField reports whether the payload contains name. Reserved state
// such as messages and debug entries is not consulted.
func (e *Envelope) HasField(name string) bool {
	return e.data.has(name)
}

// Data returns a copy of the payload. Mutating the returned map does
// not affect the envelope.
func (e *Envelope) Data() map[string]any {
	return e.data.toMap()
}

// FieldErrors returns a copy of the accumulated field errors.
func (e *Envelope) FieldErrors() map[string]string {
	out := make(map[string]string, len(e.fieldErrors))
	for k, v := range e.fieldErrors {
		out[k] = v
	}
	return out
}

// Succeeded reports whether the envelope is in the success state.
func (e *Envelope) Succeeded() bool {
	return e.success
}

// SuccessMessage returns the resolved success message, or the empty
// string when none is set.
func (e *Envelope) SuccessMessage() string {
	return e.successMessage
}

// ErrorMessage returns the resolved error message, or the empty string
// when none is set.
func (e *Envelope) ErrorMessage() string {
	return e.errorMessage
}

// RedirectURL returns the requested redirect target, or the empty
// string when none is set.
func (e *Envelope) RedirectURL() string {
	return e.redirectURL
}
