package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lightspeed-go/respkit/ctxutil"
)

const envelopeKey = "respkit/envelope"

// Middleware attaches a fresh envelope to every request and ensures a
// trace ID on the request context. Envelope options apply to every
// envelope it creates.
func Middleware(opts ...Option) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := ctxutil.EnsureTraceID(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)
		c.Set(envelopeKey, NewEnvelope(opts...))
		c.Next()
	}
}

// FromContext returns the request's envelope, creating and attaching
// one when the middleware is not installed.
func FromContext(c *gin.Context) *Envelope {
	if v, ok := c.Get(envelopeKey); ok {
		if e, ok := v.(*Envelope); ok {
			return e
		}
	}
	e := NewEnvelope()
	c.Set(envelopeKey, e)
	return e
}

// Write sends the envelope through the gin context and, unless
// WithoutAbort is given, aborts the remaining handler chain so no
// further output is produced for the request.
func Write(c *gin.Context, e *Envelope, opts ...SendOption) {
	o := defaultSendOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if err := send(c.Writer, e, o); err != nil {
		http.Error(c.Writer, "failed to encode JSON response", http.StatusInternalServerError)
	}
	if o.abort {
		c.Abort()
	}
}
