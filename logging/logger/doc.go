// Package logger provides a context-aware logrus wrapper. Log methods
// take a context as the first argument and attach the request trace ID
// as a structured field when present.
package logger
