// Package shared holds request and response helpers used by the API handlers
// and middleware: JSON decoding and validation, JSON and error responders,
// and trace ID propagation through the request context.
package shared
