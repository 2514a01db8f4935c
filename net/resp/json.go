package resp

import "encoding/json"

// Reserved top-level keys emitted by ToJSON, in emission order.
const (
	KeySuccess        = "success"
	KeySuccessMessage = "successMessage"
	KeyErrorMessage   = "errorMessage"
	KeyFieldErrors    = "fieldErrors"
	KeyRedirect       = "redirect"
	KeyDebug          = "debug"
)

// ToJSON serializes the envelope as a single flat JSON object. The
// reserved keys come first: success, successMessage, errorMessage,
// fieldErrors, redirect, debug. Messages and the redirect serialize as
// null when unset; fieldErrors and debug are always objects. Debug
// entries are emitted only when debugEnabled is true; otherwise debug
// is an empty object regardless of accumulated entries.
//
// Payload fields are merged after the reserved keys. A payload field
// named after a reserved key overwrites the reserved value in place —
// callers relying on the reserved keys must avoid those names in the
// payload.
//
// ToJSON does not mutate the envelope and is repeatable.
func (e *Envelope) ToJSON(debugEnabled bool) ([]byte, error) {
	doc := newOrderedMap()
	doc.set(KeySuccess, e.success)
	doc.set(KeySuccessMessage, nullable(e.successMessage))
	doc.set(KeyErrorMessage, nullable(e.errorMessage))
	doc.set(KeyFieldErrors, e.FieldErrors())
	doc.set(KeyRedirect, nullable(e.redirectURL))
	if debugEnabled {
		doc.set(KeyDebug, e.debug)
	} else {
		doc.set(KeyDebug, struct{}{})
	}
	for _, k := range e.data.keys {
		doc.set(k, e.data.values[k])
	}
	return json.Marshal(doc)
}

// nullable maps the empty string to JSON null.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
