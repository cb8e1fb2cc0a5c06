package models

import "fmt"

// UpstreamError reports that the camera was unreachable or answered with a
// non-success status. Handlers translate it to a 502.
type UpstreamError struct {
	URL    string
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream %s unavailable (status: %d)", e.URL, e.Status)
	}
	return fmt.Sprintf("cannot connect to upstream at %s: %v", e.URL, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ProcessingError wraps an engine or persistence failure so the original
// message survives to the client while the transport sees a single 500 class.
type ProcessingError struct {
	Op  string
	Err error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }
