// Package resp provides a JSON response envelope for reporting request
// outcomes to clients: success or error status, payload fields,
// validation field errors, debug traces, and redirect requests,
// serialized as a single flat JSON document.
//
// # Envelope
//
// An envelope starts out successful and is mutated by the handler
// producing the response:
//
//	e := resp.NewEnvelope()
//	e.SetField("user", user)
//	e.MarkSuccess("user.created")
//
//	body, err := e.ToJSON(false)
//
// Error outcomes carry an optional message plus per-field validation
// errors, merged across calls:
//
//	e.MarkError("user.invalid", map[string]string{
//	    "email": "email is invalid",
//	})
//
// # Wire format
//
// ToJSON emits one UTF-8 JSON object:
//
//	{
//	  "success": true,
//	  "successMessage": "User created",
//	  "errorMessage": null,
//	  "fieldErrors": {},
//	  "redirect": null,
//	  "debug": {},
//	  "user": {...}
//	}
//
// Payload fields are merged after the reserved keys and win on name
// collision; see ToJSON.
//
// # Messages
//
// Messages passed to MarkSuccess and MarkError are resolved through an
// i18n.Resolver injected with WithResolver. The default resolver
// returns keys unchanged.
//
// # Sending
//
// Send writes an envelope over net/http; Write does the same through a
// gin context and aborts the handler chain. Middleware attaches one
// fresh envelope per request, retrievable with FromContext. Envelopes
// are not safe for concurrent mutation and must not be shared across
// requests.
package resp
