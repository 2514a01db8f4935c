// Package ctxutil provides context.Context helpers shared across the
// toolkit, currently trace-ID propagation. Trace IDs are generated as
// nanoids and attached per request by the resp middleware; the logger
// picks them up as a log field.
package ctxutil
