package httputil

import "fmt"

// UpstreamError reports a failed HTTP exchange: either a transport error
// (StatusCode is zero) or a response with an unsuccessful status.
type UpstreamError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ParseError reports an upstream body that could not be decoded.
type ParseError struct {
	// What names the payload, e.g. "Semantic Scholar response".
	What string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.What, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
